package handler

import (
	"net/http"

	"fyyur/internal/cache"
	"fyyur/internal/service"

	"github.com/gin-gonic/gin"
)

type ShowHandler struct {
	*page
	service service.ShowService
}

func NewShowHandler(service service.ShowService, flashes cache.FlashStore) *ShowHandler {
	return &ShowHandler{page: &page{flashes: flashes}, service: service}
}

func (h *ShowHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/shows")
	{
		router.GET("", h.GetShows)
		router.GET("/create", h.CreateShowForm)
		router.POST("/create", h.CreateShow)
	}
}

func (h *ShowHandler) GetShows(c *gin.Context) {
	shows, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "GetShows")
		return
	}

	h.render(c, http.StatusOK, "shows.html", gin.H{"title": "Shows", "data": shows}, shows)
}

func (h *ShowHandler) formData(form ShowForm, startTime string) gin.H {
	return gin.H{
		"title":      "List a new show",
		"form":       form,
		"start_time": startTime,
	}
}

func (h *ShowHandler) CreateShowForm(c *gin.Context) {
	form := ShowForm{}
	h.render(c, http.StatusOK, "show_form.html", h.formData(form, ""), form)
}

func (h *ShowHandler) CreateShow(c *gin.Context) {
	var form ShowForm
	if err := BindForm(c, &form); err != nil {
		h.handleFormError(c, err, "CreateShow", "show_form.html", h.formData(form, c.PostForm("start_time")))
		return
	}

	if _, err := h.service.Create(c, form.ToModel()); err != nil {
		h.flash(c, cache.FlashError, "An error occurred. Show could not be listed.")
		h.handleFormError(c, err, "CreateShow", "show_form.html", h.formData(form, c.PostForm("start_time")))
		return
	}

	h.flash(c, cache.FlashSuccess, "Show was successfully listed!")
	redirect(c, "/")
}
