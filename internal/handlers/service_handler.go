package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/booking-api/internal/audit"
	"github.com/NavalhaDigital/booking-api/internal/httperr"
	"github.com/NavalhaDigital/booking-api/internal/httpresp"
	"github.com/NavalhaDigital/booking-api/internal/middleware"
	"github.com/NavalhaDigital/booking-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{
		db:    db,
		audit: dispatcher,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	Description     string   `json:"description"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Description     *string  `json:"description,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"services": services})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Price == nil || req.DurationMinutes == nil {
		httperr.BadRequest(c, "missing_fields", "name, price e duration_minutes são obrigatórios")
		return
	}

	service := models.Service{
		Name:            req.Name,
		Price:           *req.Price,
		DurationMinutes: *req.DurationMinutes,
		Description:     req.Description,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", err.Error())
		return
	}

	h.dispatch(c, "service_created", strconv.Itoa(service.ID))

	httpresp.Created(c, gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado: "+id)
			return
		}
		httperr.Internal(c, "failed_to_get_service", err.Error())
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Description != nil {
		service.Description = *req.Description
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", err.Error())
		return
	}

	h.dispatch(c, "service_updated", strconv.Itoa(service.ID))

	httpresp.OK(c, gin.H{"service": service})
}

func (h *ServiceHandler) dispatch(c *gin.Context, action, entityID string) {
	if h.audit == nil {
		return
	}

	var userID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			userID = &id
		}
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "service",
		EntityID: entityID,
	})
}
