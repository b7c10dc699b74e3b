package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/booking-api/internal/models"
	"github.com/NavalhaDigital/booking-api/internal/timezone"
)

type AdminWebHandler struct {
	db *gorm.DB
}

func NewAdminWebHandler(db *gorm.DB) *AdminWebHandler {
	return &AdminWebHandler{db: db}
}

func (h *AdminWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page": "login",
	})
}

func (h *AdminWebHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page": "dashboard",
	})
}

func (h *AdminWebHandler) Appointments(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page": "appointments",
		"Date": c.DefaultQuery("date", timezone.Today()),
	})
}

func (h *AdminWebHandler) Services(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page": "services",
	})
}

func (h *AdminWebHandler) Professionals(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page": "professionals",
	})
}

// Agenda por profissional: a grade consome GET /bookings filtrado.
func (h *AdminWebHandler) Schedule(c *gin.Context) {
	var professionals []models.Professional
	if err := h.db.
		Order("name ASC").
		Find(&professionals).Error; err != nil {

		c.String(http.StatusInternalServerError, "Erro ao carregar profissionais.")
		return
	}

	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page":           "schedule",
		"Date":           c.DefaultQuery("date", timezone.Today()),
		"ProfessionalID": c.Query("professional_id"),
		"Professionals":  professionals,
	})
}
