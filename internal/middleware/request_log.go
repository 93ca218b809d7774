package middleware

import (
	"net/http"
	"time"

	"cartlab/internal/platform/logger"

	"github.com/labstack/echo/v4"
)

// 1リクエスト1行のアクセスログ
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				//echoのエラーハンドラに書かせてからstatusを読む
				c.Error(err)
			}

			if log == nil {
				return nil
			}

			req := c.Request()
			res := c.Response()
			path := c.Path()
			if path == "" {
				path = req.URL.Path
			}

			fields := []interface{}{
				"method", req.Method,
				"path", path,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if rid := res.Header().Get(echo.HeaderXRequestID); rid != "" {
				fields = append(fields, "request_id", rid)
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				log.Error("HTTP request", fields...)
			case res.Status >= http.StatusBadRequest:
				log.Warn("HTTP request", fields...)
			default:
				log.Info("HTTP request", fields...)
			}
			return nil
		}
	}
}
