package utils

import (
	"time"

	"github.com/kataras/iris/v12"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request after the handler
// chain finishes.
func RequestLogger(logger *logrus.Logger) iris.Handler {
	return func(ctx iris.Context) {
		start := time.Now()

		ctx.Next()

		logger.WithFields(logrus.Fields{
			"status":  ctx.GetStatusCode(),
			"method":  ctx.Method(),
			"path":    ctx.Path(),
			"latency": time.Since(start),
			"ip":      ctx.RemoteAddr(),
		}).Info("request processed")
	}
}
