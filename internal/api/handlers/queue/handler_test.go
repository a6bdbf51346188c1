package queue

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/acochrane/send-relay/internal/config"
	mocks "github.com/acochrane/send-relay/internal/mocks/api/handlers/queue"
	"github.com/acochrane/send-relay/internal/model"
	queuerepo "github.com/acochrane/send-relay/internal/repository/queue"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockdispatchService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockdispatchService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	cfg.Queue.DefaultClaimLimit = 10
	cfg.Queue.MaxClaimLimit = 50
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func TestHandler_Enqueue_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := EnqueueRequest{
		Messages: []EnqueueMessage{
			{Recipient: "447700900001", Payload: "Hello"},
			{Recipient: "447700900002", Payload: "Hello"},
		},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/queue", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		EnqueueBatch(gomock.Any(), cfg.Retry, gomock.AssignableToTypeOf([]queuerepo.EnqueueItem{})).
		Return(1, []string{"447700900002"}, nil)

	handler.Enqueue(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)

	var resp struct {
		Data EnqueueResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Queued)
	assert.Equal(t, 1, resp.Data.Skipped)
	assert.Equal(t, []string{"447700900002"}, resp.Data.SkippedRecipients)
}

func TestHandler_Enqueue_EmptyBatch(t *testing.T) {
	handler, _, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(EnqueueRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/queue", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Enqueue(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Enqueue_InvalidBody(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/queue", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Enqueue(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Pending_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	jobs := []model.Job{{ID: uuid.New(), Recipient: "447700900001", Status: model.StatusInProgress}}

	req := httptest.NewRequest(http.MethodGet, "/api/queue/pending?limit=5", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ClaimPending(gomock.Any(), cfg.Retry, 5).
		Return(jobs, nil)

	handler.Pending(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Pending_DefaultLimit(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue/pending", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ClaimPending(gomock.Any(), cfg.Retry, cfg.Queue.DefaultClaimLimit).
		Return(nil, nil)

	handler.Pending(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestHandler_Pending_CapsLimit(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue/pending?limit=500", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ClaimPending(gomock.Any(), cfg.Retry, cfg.Queue.MaxClaimLimit).
		Return(nil, nil)

	handler.Pending(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Pending_InvalidLimit(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue/pending?limit=abc", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Pending(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_ReportStatus_Sent(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	bodyBytes, _ := json.Marshal(StatusRequest{Status: "sent"})
	req := httptest.NewRequest(http.MethodPost, "/api/queue/"+id.String()+"/status", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		ReportStatus(gomock.Any(), cfg.Retry, id, model.StatusSent, "").
		Return(model.ReliabilityRecord{Recipient: "447700900001"}, nil)

	handler.ReportStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_ReportStatus_Conflict(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	bodyBytes, _ := json.Marshal(StatusRequest{Status: "failed", Error: "chat not found"})
	req := httptest.NewRequest(http.MethodPost, "/api/queue/"+id.String()+"/status", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		ReportStatus(gomock.Any(), cfg.Retry, id, model.StatusFailed, "chat not found").
		Return(model.ReliabilityRecord{}, queuerepo.ErrJobConflict)

	handler.ReportStatus(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_ReportStatus_InvalidStatus(t *testing.T) {
	handler, _, _ := setupHandler(t)
	id := uuid.New()

	bodyBytes, _ := json.Marshal(StatusRequest{Status: "pending"})
	req := httptest.NewRequest(http.MethodPost, "/api/queue/"+id.String()+"/status", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	handler.ReportStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/queue/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetJobStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.StatusSent, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.JSONEq(t, `{"data":"sent"}`, w.Body.String())
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/queue/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetJobStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.JobStatus(""), queuerepo.ErrNoJobsFound)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_GetStatus_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue/not-a-uuid", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Requeue_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/queue/"+id.String()+"/requeue", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		RequeueJob(gomock.Any(), cfg.Retry, id).
		Return(nil)

	handler.Requeue(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Requeue_Conflict(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/queue/"+id.String()+"/requeue", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		RequeueJob(gomock.Any(), cfg.Retry, id).
		Return(queuerepo.ErrJobConflict)

	handler.Requeue(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_List_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	jobs := []model.Job{{ID: uuid.New(), Status: model.StatusFailed}}

	req := httptest.NewRequest(http.MethodGet, "/api/queue?status=failed", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ListByStatus(gomock.Any(), model.StatusFailed).
		Return(jobs, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_List_Empty(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue?status=sent", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ListByStatus(gomock.Any(), model.StatusSent).
		Return(nil, queuerepo.ErrNoJobsFound)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestHandler_List_InvalidStatus(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue?status=bogus", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Stats_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue/stats", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Stats(gomock.Any()).
		Return(model.StatusCounts{Pending: 3, Sent: 7}, nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetReliability_NotFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recipients/447700900001/reliability", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "recipient", Value: "447700900001"}}

	mockService.EXPECT().
		GetReliability(gomock.Any(), "447700900001").
		Return(model.ReliabilityRecord{}, queuerepo.ErrRecipientNotFound)

	handler.GetReliability(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_ResetReliability_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recipients/447700900001/reset", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "recipient", Value: "447700900001"}}

	mockService.EXPECT().
		ResetReliability(gomock.Any(), "447700900001").
		Return(nil)

	handler.ResetReliability(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
