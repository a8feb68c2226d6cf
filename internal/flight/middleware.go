package flight

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"skyfare/pkg/idgen"
	"skyfare/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware assigns a unique ID to every request, echoes it on
// the response, and logs the request outcome with it.
func RequestIDMiddleware(gen idgen.Generator, log logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strconv.FormatInt(gen.GenerateID(), 10)
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		log.Info("Request completed",
			logger.Field{Key: "request_id", Value: requestID},
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "path", Value: c.Request.URL.Path},
			logger.Field{Key: "status", Value: c.Writer.Status()},
		)
	}
}
