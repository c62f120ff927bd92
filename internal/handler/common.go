package handler

import (
	"net/http"
	"strconv"

	"fyyur/internal/cache"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

var offered = []string{binding.MIMEHTML, binding.MIMEJSON}

// BindForm binds a urlencoded or multipart form. Failures are returned as a ValidationError.
func BindForm(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil {
		return bindError(err)
	}
	return nil
}

// parseID reads the :id path parameter. ok is false when it is not a positive integer.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// wantsHTML reports whether Accept negotiates to a page. A missing Accept header does.
func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(offered...) != binding.MIMEJSON
}

// page holds the template data shared by every HTML page.
type page struct {
	flashes cache.FlashStore
}

// render answers with the named template or with jsonData as JSON, depending on Accept.
// htmlData is merged over the shared page fields.
func (p *page) render(c *gin.Context, status int, name string, htmlData gin.H, jsonData any) {
	if !wantsHTML(c) {
		c.JSON(status, jsonData)
		return
	}

	data := gin.H{"flashes": p.popFlashes(c)}
	for k, v := range htmlData {
		data[k] = v
	}
	c.HTML(status, name, data)
}

func (p *page) flash(c *gin.Context, category, message string) {
	if err := p.flashes.Push(c, sessionID(c), cache.Flash{Category: category, Message: message}); err != nil {
		logger.WithComponent("handler").Warn("flash push failed", zap.Error(err))
	}
}

func (p *page) popFlashes(c *gin.Context) []cache.Flash {
	flashes, err := p.flashes.Pop(c, sessionID(c))
	if err != nil {
		logger.WithComponent("handler").Warn("flash pop failed", zap.Error(err))
		return nil
	}
	return flashes
}

// redirect sends a 303 so that browsers follow a POST with a GET.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
