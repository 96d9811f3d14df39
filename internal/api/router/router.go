package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notification-service/internal/api/handlers/request"
)

func New(handler *request.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	requests := e.Group("/v1/requests")

	requests.POST("", handler.Create)
	requests.GET("", handler.GetAll)
	requests.GET("/:id", handler.GetStatus)
	requests.POST("/:id/process", handler.Process)

	return e
}
