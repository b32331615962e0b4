package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kiosk/internal/domain"
)

// @Summary Abrir sessão do totem
// @Description Cria uma sessão de atendimento e devolve o token e a tela de boas-vindas
// @Tags Totem
// @Produce json
// @Success 201 {object} domain.SessionTicket "Sessão criada"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /kiosk/sessions [post]
func (h *Handler) openSession(c *gin.Context) {
	ticket, err := h.services.Kiosk.Open(c.Request.Context())
	if err != nil {
		h.logger.Error("erro ao abrir sessão do totem", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusCreated, ticket)
}

// @Summary Encerrar sessão do totem
// @Tags Totem
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "Sessão encerrada"
// @Failure 401 {object} errorResponseBody "Sessão não encontrada"
// @Router /kiosk/sessions [delete]
func (h *Handler) closeSession(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	if err := h.services.Kiosk.Close(c.Request.Context(), sessionID); err != nil {
		status, message := errorStatus(err)
		errorResponse(c, status, message)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Tela atual
// @Description Devolve a tela que o totem deve exibir agora
// @Tags Totem
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.Frame "Tela atual"
// @Failure 401 {object} errorResponseBody "Sessão não encontrada"
// @Router /kiosk/frame [get]
func (h *Handler) getFrame(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	frame, err := h.services.Kiosk.Frame(c.Request.Context(), sessionID)
	if err != nil {
		status, message := errorStatus(err)
		errorResponse(c, status, message)
		return
	}

	successResponse(c, http.StatusOK, frame)
}

// @Summary Enviar evento
// @Description Aplica uma ação da tela atual e devolve a nova tela. Erros recuperáveis trazem a tela com o aviso.
// @Tags Totem
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body domain.Event true "Ação e dados"
// @Success 200 {object} domain.Frame "Nova tela"
// @Failure 400 {object} frameErrorBody "Seleção não disponível"
// @Failure 401 {object} errorResponseBody "Sessão não encontrada"
// @Failure 409 {object} frameErrorBody "Ação não disponível ou verificação em andamento"
// @Failure 422 {object} frameErrorBody "Dados inválidos"
// @Failure 502 {object} frameErrorBody "Verificação recusada"
// @Router /kiosk/events [post]
func (h *Handler) dispatchEvent(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	var event domain.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		badRequestResponse(c, "evento inválido")
		return
	}

	frame, err := h.services.Kiosk.Dispatch(c.Request.Context(), sessionID, event)
	if err != nil {
		status, message := errorStatus(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("erro ao processar evento",
				zap.String("session", sessionID),
				zap.String("action", string(event.Action)),
				zap.Error(err))
		}

		var field string
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			field = verr.Field
		}

		frameErrorResponse(c, status, message, field, frame)
		return
	}

	successResponse(c, http.StatusOK, frame)
}
