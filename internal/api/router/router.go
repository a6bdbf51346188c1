package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/acochrane/send-relay/internal/api/handlers/queue"
	"github.com/acochrane/send-relay/internal/middlewares"
)

func New(handler *queue.Handler, workerToken string) *ginext.Engine {
	e := ginext.New("")
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	api.Use(middlewares.BearerAuth(workerToken))
	{
		q := api.Group("/queue")
		{
			q.POST("", handler.Enqueue)
			q.GET("", handler.List)
			q.GET("/pending", handler.Pending)
			q.GET("/stats", handler.Stats)
			q.GET("/:id", handler.GetStatus)
			q.POST("/:id/status", handler.ReportStatus)
			q.POST("/:id/requeue", handler.Requeue)
		}

		r := api.Group("/recipients")
		{
			r.GET("/:recipient/reliability", handler.GetReliability)
			r.POST("/:recipient/reset", handler.ResetReliability)
		}
	}

	return e
}
