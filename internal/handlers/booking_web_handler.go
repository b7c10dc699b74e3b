package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/booking-api/internal/models"
	"github.com/NavalhaDigital/booking-api/internal/wizard"
)

type BookingWebHandler struct {
	db *gorm.DB
}

func NewBookingWebHandler(db *gorm.DB) *BookingWebHandler {
	return &BookingWebHandler{db: db}
}

// ShowBookingPage monta a casca do assistente de agendamento. O estado
// dos passos vive no navegador; aqui vão o catálogo e os profissionais
// ativos que o primeiro e o segundo passo consomem.
func (h *BookingWebHandler) ShowBookingPage(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("name ASC").
		Find(&services).Error; err != nil {

		c.String(http.StatusInternalServerError, "Erro ao carregar serviços.")
		return
	}

	var professionals []models.Professional
	if err := h.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&professionals).Error; err != nil {

		c.String(http.StatusInternalServerError, "Erro ao carregar profissionais.")
		return
	}

	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page":          "booking",
		"Step":          wizard.StepServices,
		"Services":      services,
		"Professionals": professionals,
	})
}
