package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"chill_timer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// coolingQuery holds the query parameters shared by both cooling endpoints.
type coolingQuery struct {
	DrinkID    string  `form:"drink_id" binding:"required"`
	AmbienceID string  `form:"ambience_id" binding:"required"`
	InitialC   float64 `form:"initial_c"`
}

func (q coolingQuery) ids() (drink, ambience uuid.UUID, err error) {
	if drink, err = uuid.Parse(q.DrinkID); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid drink_id: %w", err)
	}
	if ambience, err = uuid.Parse(q.AmbienceID); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid ambience_id: %w", err)
	}
	return drink, ambience, nil
}

func (h *Handler) bindCoolingQuery(c *gin.Context) (coolingQuery, uuid.UUID, uuid.UUID, bool) {
	var q coolingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, uuid.Nil, uuid.Nil, false
	}
	drink, ambience, err := q.ids()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, uuid.Nil, uuid.Nil, false
	}
	if _, ok := c.GetQuery("initial_c"); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "initial_c is required"})
		return q, uuid.Nil, uuid.Nil, false
	}
	return q, drink, ambience, true
}

// parseElapsed accepts a Go duration ("15m", "90s") or plain seconds ("900").
func parseElapsed(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("invalid elapsed %q: use a duration like 15m or seconds", s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// @Summary      Temperature after time
// @Description  Temperature of a catalog drink after elapsed time in a catalog ambience.
// @Tags         cooling
// @Produce      json
// @Param        drink_id     query  string  true  "Drink id"
// @Param        ambience_id  query  string  true  "Cooling ambience id"
// @Param        initial_c    query  number  true  "Initial temperature in °C"  example(20)
// @Param        elapsed      query  string  true  "Elapsed time (15m, 90s or seconds)"  example(15m)
// @Success      200  {object}  chill_timer.TemperatureEstimate
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/cooling/temperature [get]
// @Security     BearerAuth
func (h *Handler) coolingTemperature(c *gin.Context) {
	q, drink, ambience, ok := h.bindCoolingQuery(c)
	if !ok {
		return
	}
	raw := c.Query("elapsed")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "elapsed is required"})
		return
	}
	elapsed, err := parseElapsed(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.services.Cooling.Temperature(service.TemperatureParams{
		DrinkID:    drink,
		AmbienceID: ambience,
		InitialC:   q.InitialC,
		Elapsed:    elapsed,
	})
	if err != nil {
		h.respondError(c, "cooling_temperature_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Time until temperature
// @Description  How long a catalog drink needs to reach target_c. 422 if the ambience cannot get it there.
// @Tags         cooling
// @Produce      json
// @Param        drink_id     query  string  true  "Drink id"
// @Param        ambience_id  query  string  true  "Cooling ambience id"
// @Param        initial_c    query  number  true  "Initial temperature in °C"  example(20)
// @Param        target_c     query  number  true  "Target temperature in °C"  example(6)
// @Success      200  {object}  chill_timer.DurationEstimate
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/v1/cooling/duration [get]
// @Security     BearerAuth
func (h *Handler) coolingDuration(c *gin.Context) {
	q, drink, ambience, ok := h.bindCoolingQuery(c)
	if !ok {
		return
	}
	raw := c.Query("target_c")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_c is required"})
		return
	}
	target, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_c: " + err.Error()})
		return
	}

	res, err := h.services.Cooling.Duration(service.DurationParams{
		DrinkID:    drink,
		AmbienceID: ambience,
		InitialC:   q.InitialC,
		TargetC:    target,
	})
	if err != nil {
		h.respondError(c, "cooling_duration_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
