package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mertcan/eduportal/internal/app/models/dto"
	"github.com/mertcan/eduportal/internal/app/services"
	"github.com/mertcan/eduportal/internal/middleware"
)

// ScholarshipController handles scholarship announcement endpoints
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{scholarshipService: scholarshipService}
}

// ListScholarships returns all scholarships, newest first
// @Summary List scholarships
// @Description Lists scholarship announcements with the poster's display name
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Scholarship} "Scholarships"
// @Router /scholarships [get]
func (c *ScholarshipController) ListScholarships(ctx *gin.Context) {
	scholarships, err := c.scholarshipService.ListScholarships(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarships,
		Timestamp: time.Now(),
	})
}

// CreateScholarship adds a new scholarship announcement
// @Summary Create a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScholarshipRequest true "Scholarship data"
// @Success 201 {object} dto.APIResponse{data=models.Scholarship} "Scholarship created"
// @Failure 400 {object} dto.ErrorResponse "Invalid scholarship data"
// @Failure 403 {object} dto.ErrorResponse "Faculty role required"
// @Router /scholarships [post]
func (c *ScholarshipController) CreateScholarship(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scholarship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	scholarship, err := c.scholarshipService.CreateScholarship(ctx.Request.Context(), &req, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// DeleteScholarship removes a scholarship owned by the caller
// @Summary Delete a scholarship
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Success 200 {object} dto.APIResponse "Scholarship deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Router /scholarships/{id} [delete]
func (c *ScholarshipController) DeleteScholarship(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scholarship ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.scholarshipService.DeleteScholarship(ctx.Request.Context(), id, principal); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Scholarship deleted"},
		Timestamp: time.Now(),
	})
}
