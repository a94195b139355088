// Package router builds the echo instance: the middleware chain, the
// global error handler and every route.
package router

import (
	"github.com/deppfellow/biztime/internal/handler"
	"github.com/deppfellow/biztime/internal/middleware"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter wires the middleware chain in request order: tracing first so
// the transaction covers everything, then request id and the contextual
// logger that later middleware log through.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(echomiddleware.RemoveTrailingSlash())

	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.Metrics(s.Metrics),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, s, h)
	registerCompanyRoutes(router, h.Company)
	registerInvoiceRoutes(router, h.Invoice)
	registerIndustryRoutes(router, h.Industry)

	return router
}
