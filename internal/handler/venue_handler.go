package handler

import (
	"fmt"
	"net/http"

	"fyyur/internal/cache"
	"fyyur/internal/model"
	"fyyur/internal/service"
	apperrors "fyyur/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	*page
	service service.VenueService
}

func NewVenueHandler(service service.VenueService, flashes cache.FlashStore) *VenueHandler {
	return &VenueHandler{page: &page{flashes: flashes}, service: service}
}

func (h *VenueHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/venues")
	{
		router.GET("", h.GetVenues)
		router.POST("/search", h.SearchVenues)
		router.GET("/create", h.CreateVenueForm)
		router.POST("/create", h.CreateVenue)
		router.GET("/:id", h.GetVenue)
		router.DELETE("/:id", h.DeleteVenue)
		router.GET("/:id/edit", h.EditVenueForm)
		router.POST("/:id/edit", h.EditVenue)
	}
}

func (h *VenueHandler) GetVenues(c *gin.Context) {
	areas, err := h.service.ListAreas(c)
	if err != nil {
		h.handleError(c, err, "GetVenues")
		return
	}

	h.render(c, http.StatusOK, "venues.html", gin.H{"title": "Venues", "data": areas}, areas)
}

func (h *VenueHandler) SearchVenues(c *gin.Context) {
	term := c.PostForm("search_term")
	result, err := h.service.Search(c, term)
	if err != nil {
		h.handleError(c, err, "SearchVenues")
		return
	}

	h.render(c, http.StatusOK, "search.html", gin.H{
		"title":       "Venue search",
		"kind":        "venues",
		"search_term": term,
		"data":        result,
	}, result)
}

// GetVenue shows a venue by id. A non-numeric id is looked up as an exact name and redirected.
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		found, err := h.service.FindIDByName(c, c.Param("id"))
		if err != nil {
			h.handleError(c, err, "GetVenue")
			return
		}
		redirect(c, fmt.Sprintf("/venues/%d", found))
		return
	}

	venue, err := h.service.GetDetail(c, id)
	if err != nil {
		h.handleError(c, err, "GetVenue")
		return
	}

	h.render(c, http.StatusOK, "show_venue.html", gin.H{"title": venue.Name, "data": venue}, venue)
}

func (h *VenueHandler) formData(title, action string, form VenueForm) gin.H {
	return gin.H{
		"title":  title,
		"action": action,
		"form":   form,
		"states": model.States,
		"genres": model.Genres,
	}
}

func (h *VenueHandler) CreateVenueForm(c *gin.Context) {
	form := VenueForm{}
	h.render(c, http.StatusOK, "venue_form.html", h.formData("List a new venue", "/venues/create", form), form)
}

func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var form VenueForm
	if err := BindForm(c, &form); err != nil {
		h.handleFormError(c, err, "CreateVenue", "venue_form.html", h.formData("List a new venue", "/venues/create", form))
		return
	}

	created, err := h.service.Create(c, form.ToModel())
	if err != nil {
		h.flash(c, cache.FlashError, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		h.handleFormError(c, err, "CreateVenue", "venue_form.html", h.formData("List a new venue", "/venues/create", form))
		return
	}

	h.flash(c, cache.FlashSuccess, fmt.Sprintf("Venue %s was successfully listed!", created.Name))
	redirect(c, "/")
}

func (h *VenueHandler) EditVenueForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.handleError(c, apperrors.ErrVenueNotFound, "EditVenueForm")
		return
	}

	venue, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "EditVenueForm")
		return
	}

	form := venueFormFrom(venue)
	h.render(c, http.StatusOK, "venue_form.html", h.formData("Edit venue", fmt.Sprintf("/venues/%d/edit", id), form), form)
}

func (h *VenueHandler) EditVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.handleError(c, apperrors.ErrVenueNotFound, "EditVenue")
		return
	}
	action := fmt.Sprintf("/venues/%d/edit", id)

	var form VenueForm
	if err := BindForm(c, &form); err != nil {
		h.handleFormError(c, err, "EditVenue", "venue_form.html", h.formData("Edit venue", action, form))
		return
	}

	updated, err := h.service.Update(c, id, form.ToModel())
	if err != nil {
		h.flash(c, cache.FlashError, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		h.handleFormError(c, err, "EditVenue", "venue_form.html", h.formData("Edit venue", action, form))
		return
	}

	h.flash(c, cache.FlashSuccess, fmt.Sprintf("Venue %s was successfully updated!", updated.Name))
	redirect(c, fmt.Sprintf("/venues/%d", id))
}

func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.handleError(c, apperrors.ErrVenueNotFound, "DeleteVenue")
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "DeleteVenue")
		return
	}

	// 只有頁面上的刪除按鈕會接著載入下一頁
	if wantsHTML(c) {
		h.flash(c, cache.FlashSuccess, "Venue was successfully deleted!")
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
