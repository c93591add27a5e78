package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Paths that would flood the request log: the long-lived calculation
// stream and scrape endpoints.
var quietPaths = map[string]bool{
	"/ws/calc": true,
	"/metrics": true,
	"/healthz": true,
}

// RequestLogging logs HTTP requests.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if quietPaths[req.URL.Path] {
				return next(c)
			}

			res := c.Response()
			start := time.Now()

			err := next(c)

			latency := time.Since(start)
			log.Printf("[%s] %s %s - %d (%s)",
				req.Method,
				req.RequestURI,
				req.RemoteAddr,
				res.Status,
				latency,
			)

			return err
		}
	}
}
