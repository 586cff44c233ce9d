package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	apiV1Prefix = "/api/v1"

	postsPath      = "/posts"
	postByIDPath   = "/posts/:id"
	featuredPath   = "/featured"
	categoriesPath = "/categories"
	searchPath     = "/search"

	healthPath = "/health"
)

// RegisterRoutes builds the echo engine with all blog routes mounted.
func (h *BlogHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())

	api := e.Group(apiV1Prefix)
	api.GET(postsPath, h.Posts)
	api.GET(postByIDPath, h.PostByID)
	api.GET(featuredPath, h.Featured)
	api.GET(categoriesPath, h.Categories)
	api.GET(searchPath, h.Search)

	e.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}
