package handlers

import (
	"net/http"

	"clinicdesk/config"
	clinicRepo "clinicdesk/database/repository/clinic"
	"clinicdesk/models"
	"clinicdesk/services/scheduling"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
)

// ClinicHandler exposes the clinic directory endpoints.
type ClinicHandler struct {
	Repo clinicRepo.ClinicRepository
}

func NewClinicHandler(repo clinicRepo.ClinicRepository) *ClinicHandler {
	return &ClinicHandler{Repo: repo}
}

// GetClinicHandler returns the public view of one clinic.
func (h *ClinicHandler) GetClinicHandler(c *gin.Context) {
	clinic, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "clinic not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       clinic.ID,
		"name":     clinic.Name,
		"address":  clinic.Address,
		"phone":    clinic.Phone,
		"timezone": clinic.Timezone,
	})
}

// ListClinicsHandler returns the public view of every registered clinic.
func (h *ClinicHandler) ListClinicsHandler(c *gin.Context) {
	clinics, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list clinics", err.Error())
		return
	}
	out := make([]gin.H, 0, len(clinics))
	for _, clinic := range clinics {
		out = append(out, gin.H{
			"id":       clinic.ID,
			"name":     clinic.Name,
			"address":  clinic.Address,
			"phone":    clinic.Phone,
			"timezone": clinic.Timezone,
		})
	}
	c.JSON(http.StatusOK, gin.H{"clinics": out})
}

// GetClinicServicesHandler lists the services offered across the roster.
func (h *ClinicHandler) GetClinicServicesHandler(c *gin.Context) {
	clinic, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "clinic not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"services": scheduling.ClinicServices(clinic),
		"clinicInfo": gin.H{
			"name":     clinic.Name,
			"timezone": clinic.Timezone,
			"address":  clinic.Address,
			"phone":    clinic.Phone,
		},
	})
}

// CreateClinicHandler registers a clinic record. Admin only.
func (h *ClinicHandler) CreateClinicHandler(c *gin.Context) {
	var clinic models.Clinic
	if err := c.ShouldBindJSON(&clinic); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid clinic payload", err.Error())
		return
	}
	if clinic.ID == "" || clinic.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid clinic payload", "id and name are required")
		return
	}
	if clinic.Timezone == "" {
		clinic.Timezone = config.AppConfig.DefaultTimezone
	}

	if err := h.Repo.Create(&clinic); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create clinic", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": clinic.ID})
}

// UpdateClinicHandler replaces a clinic record. Admin only.
func (h *ClinicHandler) UpdateClinicHandler(c *gin.Context) {
	var clinic models.Clinic
	if err := c.ShouldBindJSON(&clinic); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid clinic payload", err.Error())
		return
	}
	clinic.ID = c.Param("id")

	if err := h.Repo.Update(&clinic); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update clinic", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": clinic.ID})
}

// DeleteClinicHandler removes a clinic record. Admin only.
func (h *ClinicHandler) DeleteClinicHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete clinic", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
