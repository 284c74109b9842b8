package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSlots(c *ginext.Context)
	ListServices(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reference data
		api.GET("/slots", h.ListSlots)
		api.GET("/services", h.ListServices)
		api.GET("/availability", h.GetAvailability)

		// Bookings
		api.POST("/bookings", h.SubmitBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
