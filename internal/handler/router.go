package handler

import (
	"fmt"
	"net/http"
	"time"

	"fyyur/config"
	"fyyur/internal/cache"
	"fyyur/internal/service"
	"fyyur/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Venues  service.VenueService
	Artists service.ArtistService
	Shows   service.ShowService
}

// NewRouter builds the engine with middleware, templates and every route.
func NewRouter(cfg config.ServerConfig, services Services, flashes cache.FlashStore) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	home := NewHomeHandler(services.Venues, services.Artists, flashes)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(RequestID(), RequestLogger(), gin.CustomRecovery(home.Recovered))
	if len(cfg.CORSAllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
			ExposeHeaders: []string{RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	router.Use(Session(cfg.SessionCookie))

	home.RegisterRoutes(router)
	NewVenueHandler(services.Venues, flashes).RegisterRoutes(router)
	NewArtistHandler(services.Artists, flashes).RegisterRoutes(router)
	NewShowHandler(services.Shows, flashes).RegisterRoutes(router)

	return router, nil
}
