package main

import (
	"github.com/JaimeStill/offer-board/internal/infrastructure"
	"github.com/JaimeStill/offer-board/pkg/middleware"
)

// buildMiddleware creates the service-wide middleware stack: canonical paths and request logging.
func buildMiddleware(infra *infrastructure.Infrastructure) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.Logger(infra.Logger))
	return middlewareSys
}
