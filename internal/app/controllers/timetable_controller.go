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

// TimetableController handles class schedule endpoints
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// ListTimetable returns the schedule grouped by weekday
// @Summary Weekly timetable
// @Description Lists class entries grouped Monday through Sunday
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.DaySchedule} "Grouped timetable"
// @Router /timetable [get]
func (c *TimetableController) ListTimetable(ctx *gin.Context) {
	schedule, err := c.timetableService.ListGrouped(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// CreateEntry adds a class to the timetable
// @Summary Create a timetable entry
// @Description Adds a class entry; a fifteen minute break is appended to the end time
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTimetableEntryRequest true "Entry data"
// @Success 201 {object} dto.APIResponse{data=models.TimetableEntry} "Entry created"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry data"
// @Failure 403 {object} dto.ErrorResponse "Faculty role required"
// @Router /timetable [post]
func (c *TimetableController) CreateEntry(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateTimetableEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid entry data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entry, err := c.timetableService.CreateEntry(ctx.Request.Context(), &req, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      entry,
		Timestamp: time.Now(),
	})
}

// DeleteEntry removes a timetable entry owned by the caller
// @Summary Delete a timetable entry
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.APIResponse "Entry deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /timetable/{id} [delete]
func (c *TimetableController) DeleteEntry(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid entry ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.timetableService.DeleteEntry(ctx.Request.Context(), id, principal); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Entry deleted"},
		Timestamp: time.Now(),
	})
}
