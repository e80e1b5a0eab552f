package equipment

import (
	"errors"
	"net/http"
	"strconv"

	"fitclub/internal/api"
	"fitclub/internal/auth"
	"fitclub/internal/email"
	"fitclub/internal/member"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, emailService *email.Service) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), member.NewRepository(db), emailService),
	}
}

// CreateEquipment godoc
// @Summary      Add equipment
// @Description  Registers a piece of equipment in a room. Admin only.
// @Tags         equipment
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateEquipmentRequest  true  "Equipment data"
// @Success      201      {object}  Equipment
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/equipment [post]
func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	eq, err := h.service.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create equipment"})
		return
	}

	c.JSON(http.StatusCreated, eq)
}

// GetEquipment godoc
// @Summary      Get equipment
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentID  path      int  true  "Equipment ID"
// @Success      200          {object}  Equipment
// @Failure      400          {object}  gin.H
// @Failure      404          {object}  gin.H
// @Router       /equipment/{equipmentID} [get]
func (h *Handler) GetEquipment(c *gin.Context) {
	equipmentID, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	eq, err := h.service.GetEquipment(c.Request.Context(), equipmentID)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, eq)
}

// ListRoomEquipment godoc
// @Summary      List equipment in a room
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        roomID  path      int  true  "Room ID"
// @Success      200     {array}   Equipment
// @Failure      400     {object}  gin.H
// @Router       /rooms/{roomID}/equipment [get]
func (h *Handler) ListRoomEquipment(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	items, err := h.service.ListRoomEquipment(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ReportIssue godoc
// @Summary      Report maintenance issue
// @Description  Opens a maintenance record and takes the equipment out of service.
// @Tags         equipment
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        equipmentID  path      int                 true  "Equipment ID"
// @Param        request      body      ReportIssueRequest  true  "Issue description"
// @Success      201          {object}  MaintenanceRecord
// @Failure      400          {object}  gin.H
// @Failure      404          {object}  gin.H
// @Router       /equipment/{equipmentID}/issues [post]
func (h *Handler) ReportIssue(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	equipmentID, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	var req ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	record, err := h.service.ReportIssue(c.Request.Context(), equipmentID, memberID, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		case errors.Is(err, ErrEmptyDescription):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Issue description must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report issue"})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateStatus godoc
// @Summary      Update maintenance record status
// @Description  Moves a record forward through open, in_progress and resolved.
// @Description  Resolving recomputes the equipment's operational flag.
// @Tags         equipment
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        recordID  path      int                  true  "Maintenance record ID"
// @Param        request   body      UpdateStatusRequest  true  "Target status"
// @Success      200       {object}  MaintenanceRecord
// @Failure      400       {object}  gin.H
// @Failure      404       {object}  gin.H
// @Failure      409       {object}  gin.H
// @Router       /admin/maintenance/{recordID} [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	recordID, err := strconv.Atoi(c.Param("recordID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	record, err := h.service.UpdateStatus(c.Request.Context(), recordID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance record not found"})
		case errors.Is(err, ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown maintenance status"})
		case errors.Is(err, ErrRecordResolved):
			c.JSON(http.StatusConflict, gin.H{"error": "Record is already resolved"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetMaintenanceHistory godoc
// @Summary      Maintenance history for equipment
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentID  path      int  true  "Equipment ID"
// @Success      200          {array}   MaintenanceRecord
// @Failure      400          {object}  gin.H
// @Failure      404          {object}  gin.H
// @Router       /equipment/{equipmentID}/issues [get]
func (h *Handler) GetMaintenanceHistory(c *gin.Context) {
	equipmentID, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	records, err := h.service.GetMaintenanceHistory(c.Request.Context(), equipmentID)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch maintenance history"})
		return
	}

	c.JSON(http.StatusOK, records)
}
