package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/acochrane/send-relay/internal/model"
)

var testStrategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func TestClient_FetchPending_Success(t *testing.T) {
	id := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/queue/pending", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []model.Job{
				{ID: id, Recipient: "447700900001", Payload: "hello", Status: model.StatusInProgress},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "secret", time.Second, testStrategy)

	jobs, err := c.FetchPending(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, id, jobs[0].ID)
	assert.Equal(t, "447700900001", jobs[0].Recipient)
	assert.Equal(t, model.StatusInProgress, jobs[0].Status)
}

func TestClient_FetchPending_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer server.Close()

	c := New(server.URL, "wrong", time.Second, testStrategy)

	_, err := c.FetchPending(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_FetchPending_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
	}))
	defer server.Close()

	c := New(server.URL, "secret", time.Second, testStrategy)

	_, err := c.FetchPending(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClient_ReportStatus_Success(t *testing.T) {
	id := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/queue/"+id.String()+"/status", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Status string `json:"status"`
			Error  string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "failed", req.Status)
		assert.Equal(t, "chat not found", req.Error)

		_, _ = w.Write([]byte(`{"data":{"recipient":"447700900001","failure_count":1,"unreachable":false}}`))
	}))
	defer server.Close()

	c := New(server.URL, "secret", time.Second, testStrategy)

	err := c.ReportStatus(context.Background(), id, model.StatusFailed, "chat not found")
	assert.NoError(t, err)
}

func TestClient_ReportStatus_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"job is not in progress"}`))
	}))
	defer server.Close()

	c := New(server.URL, "secret", time.Second, testStrategy)

	err := c.ReportStatus(context.Background(), uuid.New(), model.StatusSent, "")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New(server.URL, "secret", time.Second, testStrategy)

	_, err := c.FetchPending(context.Background(), 5)
	assert.Error(t, err)
}
