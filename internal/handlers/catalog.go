package handlers

import (
	"net/http"

	chill "chill_timer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary      List presets
// @Description  Every preset with the estimated cooling time from its initial to its target temperature.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, presets"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/presets [get]
// @Security     BearerAuth
func (h *Handler) listPresets(c *gin.Context) {
	presets := h.services.Catalog.Presets()
	c.JSON(http.StatusOK, gin.H{"count": len(presets), "presets": presets})
}

// @Summary      Get preset
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Preset id"
// @Success      200  {object}  chill_timer.PresetView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/presets/{id} [get]
// @Security     BearerAuth
func (h *Handler) getPreset(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	p, err := h.services.Catalog.Preset(id)
	if err != nil {
		h.respondError(c, "preset_get_failed", err, "preset_id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      List drinks
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, drinks"
// @Router       /api/v1/drinks [get]
// @Security     BearerAuth
func (h *Handler) listDrinks(c *gin.Context) {
	drinks := h.services.Catalog.Drinks()
	c.JSON(http.StatusOK, gin.H{"count": len(drinks), "drinks": drinks})
}

// @Summary      List ambiences
// @Description  Initial, cooling and target ambiences. Filter with ?kind=initial|cooling|target.
// @Tags         catalog
// @Produce      json
// @Param        kind  query  string  false  "Ambience kind"  Enums(initial,cooling,target)
// @Success      200  {object}  map[string]interface{}  "count, ambiences"
// @Router       /api/v1/ambiences [get]
// @Security     BearerAuth
func (h *Handler) listAmbiences(c *gin.Context) {
	all := h.services.Catalog.Ambiences()
	kind := c.Query("kind")
	out := make([]chill.AmbienceView, 0, len(all))
	for _, a := range all {
		if kind == "" || a.Kind == kind {
			out = append(out, a)
		}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "ambiences": out})
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ": " + err.Error()})
		return uuid.Nil, false
	}
	return id, true
}
