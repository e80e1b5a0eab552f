package availability

import (
	"errors"
	"net/http"
	"strconv"

	"fitclub/internal/api"
	"fitclub/internal/lock"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, locks *lock.Keyed) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), locks),
	}
}

// AddSlot godoc
// @Summary      Add availability slot
// @Description  Adds a recurring weekly window for a trainer. Rejects windows that
// @Description  overlap an existing slot of the same trainer on the same weekday.
// @Tags         availability
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      AddSlotRequest  true  "Slot data"
// @Success      201      {object}  Slot
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /admin/availability [post]
func (h *Handler) AddSlot(c *gin.Context) {
	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	slot, err := h.service.AddSlot(c.Request.Context(), req)
	if err != nil {
		var conflict *ConflictError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, api.ConflictResponse{
				Error:     "Slot overlaps existing availability",
				Conflicts: conflict.Conflicts,
			})
		case errors.Is(err, ErrInvalidDay),
			errors.Is(err, ErrInvalidClock),
			errors.Is(err, ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add availability slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// GetTrainerSchedule godoc
// @Summary      Trainer weekly availability
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {array}   Slot
// @Failure      400        {object}  gin.H
// @Router       /availability/{trainerID} [get]
func (h *Handler) GetTrainerSchedule(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	slots, err := h.service.GetTrainerSchedule(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// RemoveSlot godoc
// @Summary      Remove availability slot
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Param        slotID     path      int  true  "Slot ID"
// @Success      200        {object}  gin.H
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /admin/availability/{trainerID}/{slotID} [delete]
func (h *Handler) RemoveSlot(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}
	slotID, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot ID"})
		return
	}

	if err := h.service.RemoveSlot(c.Request.Context(), slotID, trainerID); err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Availability slot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove availability slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability slot removed"})
}
