package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Listar especialistas
// @Description Devolve o catálogo de especialistas, opcionalmente filtrado pelo motivo da consulta
// @Tags Especialistas
// @Produce json
// @Param reason query string false "Motivo da consulta"
// @Success 200 {array} domain.SpecialistCard "Especialistas"
// @Router /specialists [get]
func (h *Handler) getSpecialists(c *gin.Context) {
	specialists := h.services.Specialist.List(c.Request.Context(), c.Query("reason"))
	successResponse(c, http.StatusOK, specialists)
}

// @Summary Obter especialista
// @Tags Especialistas
// @Produce json
// @Param id path int true "ID do especialista"
// @Success 200 {object} domain.SpecialistCard "Especialista"
// @Failure 400 {object} errorResponseBody "ID inválido"
// @Failure 404 {object} errorResponseBody "Especialista não encontrado"
// @Router /specialists/{id} [get]
func (h *Handler) getSpecialistByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	specialist, err := h.services.Specialist.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, specialist)
}

// @Summary Agenda do especialista
// @Description Próximos dias com disponibilidade e horários atendidos
// @Tags Especialistas
// @Produce json
// @Param id path int true "ID do especialista"
// @Success 200 {object} domain.Availability "Disponibilidade"
// @Failure 400 {object} errorResponseBody "ID inválido"
// @Failure 404 {object} errorResponseBody "Especialista não encontrado"
// @Router /specialists/{id}/calendar [get]
func (h *Handler) getSpecialistCalendar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	availability, err := h.services.Specialist.Availability(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, availability)
}
