package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListHalls(c *ginext.Context)
	ListMenuItems(c *ginext.Context)
	CreateSession(c *ginext.Context)
	GetSession(c *ginext.Context)
	UpdateDraft(c *ginext.Context)
	NextStep(c *ginext.Context)
	PreviousStep(c *ginext.Context)
	SubmitSession(c *ginext.Context)
	AbandonSession(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/catalog/halls", h.ListHalls)
		api.GET("/catalog/menu-items", h.ListMenuItems)

		// Booking sessions
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.DELETE("/sessions/:id", h.AbandonSession)
		api.PATCH("/sessions/:id/draft", h.UpdateDraft)
		api.POST("/sessions/:id/next", h.NextStep)
		api.POST("/sessions/:id/previous", h.PreviousStep)
		api.POST("/sessions/:id/submit", h.SubmitSession)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
