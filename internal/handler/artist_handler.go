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

type ArtistHandler struct {
	*page
	service service.ArtistService
}

func NewArtistHandler(service service.ArtistService, flashes cache.FlashStore) *ArtistHandler {
	return &ArtistHandler{page: &page{flashes: flashes}, service: service}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/artists")
	{
		router.GET("", h.GetArtists)
		router.POST("/search", h.SearchArtists)
		router.GET("/create", h.CreateArtistForm)
		router.POST("/create", h.CreateArtist)
		router.GET("/:id", h.GetArtist)
		router.DELETE("/:id", h.DeleteArtist)
		router.GET("/:id/edit", h.EditArtistForm)
		router.POST("/:id/edit", h.EditArtist)
	}
}

func (h *ArtistHandler) GetArtists(c *gin.Context) {
	artists, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "GetArtists")
		return
	}

	h.render(c, http.StatusOK, "artists.html", gin.H{"title": "Artists", "data": artists}, artists)
}

func (h *ArtistHandler) SearchArtists(c *gin.Context) {
	term := c.PostForm("search_term")
	result, err := h.service.Search(c, term)
	if err != nil {
		h.handleError(c, err, "SearchArtists")
		return
	}

	h.render(c, http.StatusOK, "search.html", gin.H{
		"title":       "Artist search",
		"kind":        "artists",
		"search_term": term,
		"data":        result,
	}, result)
}

// GetArtist shows an artist by id. A non-numeric id is looked up as an exact name and redirected.
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		found, err := h.service.FindIDByName(c, c.Param("id"))
		if err != nil {
			h.handleError(c, err, "GetArtist")
			return
		}
		redirect(c, fmt.Sprintf("/artists/%d", found))
		return
	}

	artist, err := h.service.GetDetail(c, id)
	if err != nil {
		h.handleError(c, err, "GetArtist")
		return
	}

	h.render(c, http.StatusOK, "show_artist.html", gin.H{"title": artist.Name, "data": artist}, artist)
}

func (h *ArtistHandler) formData(title, action string, form ArtistForm) gin.H {
	return gin.H{
		"title":  title,
		"action": action,
		"form":   form,
		"states": model.States,
		"genres": model.Genres,
	}
}

func (h *ArtistHandler) CreateArtistForm(c *gin.Context) {
	form := ArtistForm{}
	h.render(c, http.StatusOK, "artist_form.html", h.formData("List a new artist", "/artists/create", form), form)
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var form ArtistForm
	if err := BindForm(c, &form); err != nil {
		h.handleFormError(c, err, "CreateArtist", "artist_form.html", h.formData("List a new artist", "/artists/create", form))
		return
	}

	created, err := h.service.Create(c, form.ToModel())
	if err != nil {
		h.flash(c, cache.FlashError, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		h.handleFormError(c, err, "CreateArtist", "artist_form.html", h.formData("List a new artist", "/artists/create", form))
		return
	}

	h.flash(c, cache.FlashSuccess, fmt.Sprintf("Artist %s was successfully listed!", created.Name))
	redirect(c, "/")
}

func (h *ArtistHandler) EditArtistForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.handleError(c, apperrors.ErrArtistNotFound, "EditArtistForm")
		return
	}

	artist, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "EditArtistForm")
		return
	}

	form := artistFormFrom(artist)
	h.render(c, http.StatusOK, "artist_form.html", h.formData("Edit artist", fmt.Sprintf("/artists/%d/edit", id), form), form)
}

func (h *ArtistHandler) EditArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.handleError(c, apperrors.ErrArtistNotFound, "EditArtist")
		return
	}
	action := fmt.Sprintf("/artists/%d/edit", id)

	var form ArtistForm
	if err := BindForm(c, &form); err != nil {
		h.handleFormError(c, err, "EditArtist", "artist_form.html", h.formData("Edit artist", action, form))
		return
	}

	updated, err := h.service.Update(c, id, form.ToModel())
	if err != nil {
		h.flash(c, cache.FlashError, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		h.handleFormError(c, err, "EditArtist", "artist_form.html", h.formData("Edit artist", action, form))
		return
	}

	h.flash(c, cache.FlashSuccess, fmt.Sprintf("Artist %s was successfully updated!", updated.Name))
	redirect(c, fmt.Sprintf("/artists/%d", id))
}

func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.handleError(c, apperrors.ErrArtistNotFound, "DeleteArtist")
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "DeleteArtist")
		return
	}

	// 只有頁面上的刪除按鈕會接著載入下一頁
	if wantsHTML(c) {
		h.flash(c, cache.FlashSuccess, "Artist was successfully deleted!")
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
