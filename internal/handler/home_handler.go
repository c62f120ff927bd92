package handler

import (
	"net/http"

	"fyyur/internal/cache"
	"fyyur/internal/model"
	"fyyur/internal/service"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	*page
	venues  service.VenueService
	artists service.ArtistService
}

func NewHomeHandler(venues service.VenueService, artists service.ArtistService, flashes cache.FlashStore) *HomeHandler {
	return &HomeHandler{page: &page{flashes: flashes}, venues: venues, artists: artists}
}

func (h *HomeHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/ping", h.Ping)
	r.NoRoute(h.NotFound)
}

// Index lists the most recently created venues and artists.
func (h *HomeHandler) Index(c *gin.Context) {
	venues, err := h.venues.Recent(c)
	if err != nil {
		h.handleError(c, err, "Index")
		return
	}
	artists, err := h.artists.Recent(c)
	if err != nil {
		h.handleError(c, err, "Index")
		return
	}

	view := model.HomeView{Venues: venues, Artists: artists}
	h.render(c, http.StatusOK, "home.html", gin.H{"data": view}, view)
}

func (h *HomeHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func (h *HomeHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error.html", gin.H{
		"title":  "Not Found",
		"status": http.StatusNotFound,
		"error":  "Page not found",
	}, gin.H{"error": "Page not found"})
}

// Recovered renders the 500 page after a panic.
func (h *HomeHandler) Recovered(c *gin.Context, recovered any) {
	h.render(c, http.StatusInternalServerError, "error.html", gin.H{
		"title":  "Server Error",
		"status": http.StatusInternalServerError,
		"error":  "Internal server error",
	}, gin.H{"error": "Internal server error"})
	c.Abort()
}
