package handlers

import (
	"errors"
	"net/http"

	"lojinha/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lojinha/utils"
)

// AppointmentHandler exposes the booking endpoints.
type AppointmentHandler struct {
	Service scheduling.Service
}

func NewAppointmentHandler(svc scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointment handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req scheduling.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido."})
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		var ve *scheduling.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": ve.Message,
				"errors":  gin.H{ve.Field: []string{ve.Message}},
			})
		case errors.Is(err, scheduling.ErrOutOfHours),
			errors.Is(err, scheduling.ErrSlotConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Booking failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar agendamento."})
		}
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// ListAppointments handles GET /api/appointments?date=YYYY-MM-DD.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appts, err := h.Service.ListByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		var ve *scheduling.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
			return
		}
		utils.GetLogger().Error("Appointment listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar agendamentos."})
		return
	}

	c.JSON(http.StatusOK, appts)
}
