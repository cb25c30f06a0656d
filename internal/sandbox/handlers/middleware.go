package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/calamaunido/internal/common"
	"github.com/dmitrijs2005/calamaunido/internal/logging"
	"github.com/dmitrijs2005/calamaunido/internal/sandbox/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the middleware.
const (
	ContextRequestID = "request_id"
	ContextRUT       = "rut"
)

const RequestIDHeader = "X-Request-Id"

// RequestID echoes a client-supplied X-Request-Id or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one line per request.
func AccessLog(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(ContextRequestID),
		)
	}
}

// Auth requires a valid Bearer access token and stores its RUT in the
// context. Failures answer 401 with a "detail" body.
func Auth(secretKey []byte, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Las credenciales de autenticación no se proveyeron."})
			return
		}

		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Se requiere un token Bearer."})
			return
		}

		rut, err := auth.GetRUTFromToken(token, secretKey, auth.KindAccess)
		if err != nil {
			log.Warn(c.Request.Context(), "token rejected", "error", err, "client", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "El token no es válido o ha expirado."})
			return
		}

		c.Set(ContextRUT, rut)
		c.Next()
	}
}
