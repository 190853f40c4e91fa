// Package greeter serves the fixed greeting over HTTP.
//
// The router knows exactly one route, GET /. Every other path or method is
// left to gin's defaults.
package greeter

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// Greeting is the constant response body for GET /.
const Greeting = "Hello friend from Axum."

// RouterConfig toggles the optional router middleware.
type RouterConfig struct {
	// AccessLog enables gin's request logger on the process log writer.
	AccessLog bool
	// TracerProvider enables a server span per request when set.
	TracerProvider trace.TracerProvider
}

// NewRouter builds the single-route gin engine.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.AccessLog {
		router.Use(gin.LoggerWithWriter(log.Writer()))
	}
	if cfg.TracerProvider != nil {
		router.Use(traceRequests(cfg.TracerProvider.Tracer(tracerName)))
	}

	router.GET("/", greet)
	return router
}

func greet(c *gin.Context) {
	c.String(http.StatusOK, Greeting)
}
