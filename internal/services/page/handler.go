package page

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// HandlerConfig carries the document settings of the host page.
type HandlerConfig struct {
	Title string
	Lang  string
}

// NewHandler serves the mounted component inside its host document on GET /.
func NewHandler(cfg HandlerConfig, app *App) http.Handler {
	if app == nil {
		app = Mount(nil)
	}
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(secure.New(secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
	}))

	router.GET("/", func(c *gin.Context) {
		templ.Handler(Document(cfg.Title, cfg.Lang, app.View())).ServeHTTP(c.Writer, c.Request)
	})
	return router
}
