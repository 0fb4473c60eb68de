package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// startTimerRequest is the body of POST /api/v1/timers.
type startTimerRequest struct {
	PresetID string `json:"preset_id" binding:"required" example:"5f0c7d3e-2b1a-5c4d-9e8f-0a1b2c3d4e5f"`
}

// @Summary      Start timer
// @Description  Starts a cooling timer for a preset. 422 if the preset target is unreachable.
// @Tags         timers
// @Accept       json
// @Produce      json
// @Param        body  body      startTimerRequest  true  "Preset to start"
// @Success      201   {object}  chill_timer.TimerView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/timers [post]
// @Security     BearerAuth
func (h *Handler) startTimer(c *gin.Context) {
	uid, ok := h.mustUserID(c)
	if !ok {
		return
	}
	var req startTimerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	presetID, err := uuid.Parse(req.PresetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset_id: " + err.Error()})
		return
	}

	v, err := h.services.Timers.Start(c.Request.Context(), uid, presetID)
	if err != nil {
		h.respondError(c, "timer_start_failed", err, "user_id", uid, "preset_id", presetID)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// @Summary      List timers
// @Description  Live samples of the caller's active timers.
// @Tags         timers
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, timers"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/timers [get]
// @Security     BearerAuth
func (h *Handler) listTimers(c *gin.Context) {
	uid, ok := h.mustUserID(c)
	if !ok {
		return
	}
	timers, err := h.services.Timers.List(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, "timer_list_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(timers), "timers": timers})
}

// @Summary      Cancel timer
// @Tags         timers
// @Produce      json
// @Param        id   path      string  true  "Timer id"
// @Success      200  {object}  chill_timer.TimerView
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/timers/{id} [delete]
// @Security     BearerAuth
func (h *Handler) cancelTimer(c *gin.Context) {
	uid, ok := h.mustUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	v, err := h.services.Timers.Cancel(c.Request.Context(), uid, id)
	if err != nil {
		h.respondError(c, "timer_cancel_failed", err, "user_id", uid, "timer_id", id)
		return
	}
	c.JSON(http.StatusOK, v)
}
