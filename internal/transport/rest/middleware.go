package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kiosk/internal/domain"
)

const (
	authorizationHeader = "Authorization"
	sessionIDCtx        = "session_id"
)

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := h.logger.With(
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
		)

		if status >= 500 {
			logger.Error("erro no servidor")
		} else if status >= 400 {
			logger.Warn("erro do cliente")
		} else {
			logger.Info("requisição processada")
		}
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			h.logger.Error("erro na requisição", zap.Error(err))
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Length, Accept-Encoding, Origin, Accept, User-Agent, X-Requested-With, Cache-Control")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// sessionMiddleware resolves the kiosk session from the bearer token.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			unauthorizedResponse(c, "cabeçalho de autorização vazio")
			return
		}

		headerParts := strings.Split(header, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			unauthorizedResponse(c, "formato do cabeçalho de autorização inválido")
			return
		}

		sessionID, err := h.services.Kiosk.ResolveToken(headerParts[1])
		if err != nil {
			unauthorizedResponse(c, domain.ErrSessionNotFound.Error())
			return
		}

		c.Set(sessionIDCtx, sessionID)

		c.Next()
	}
}

func getSessionID(c *gin.Context) (string, error) {
	value, exists := c.Get(sessionIDCtx)
	if !exists {
		return "", errors.New("sessão não autenticada")
	}

	id, ok := value.(string)
	if !ok || id == "" {
		return "", errors.New("identificador de sessão inválido")
	}

	return id, nil
}
