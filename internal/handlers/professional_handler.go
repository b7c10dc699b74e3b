package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/booking-api/internal/audit"
	"github.com/NavalhaDigital/booking-api/internal/httperr"
	"github.com/NavalhaDigital/booking-api/internal/httpresp"
	"github.com/NavalhaDigital/booking-api/internal/models"
)

type ProfessionalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProfessionalHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ProfessionalHandler {
	return &ProfessionalHandler{
		db:    db,
		audit: dispatcher,
	}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	var professionals []models.Professional
	if err := h.db.
		Order("name ASC").
		Find(&professionals).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"professionals": professionals})
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" {
		httperr.BadRequest(c, "missing_fields", "name, email e phone são obrigatórios")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	professional := models.Professional{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: isActive,
	}

	if err := h.db.Create(&professional).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", err.Error())
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			Action:   "professional_created",
			Entity:   "professional",
			EntityID: professional.ID,
		})
	}

	httpresp.Created(c, gin.H{"professional": professional})
}
