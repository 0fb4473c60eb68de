package service

import (
	"fmt"

	chill "chill_timer"
	"chill_timer/internal/catalog"
	"chill_timer/internal/cooling"

	"github.com/google/uuid"
)

type CatalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: cat}
}

// Presets lists every preset whose target is reachable, with its estimated
// cooling time.
func (s *CatalogService) Presets() []chill.PresetView {
	presets := s.catalog.Presets()
	out := make([]chill.PresetView, 0, len(presets))
	for _, p := range presets {
		v, err := s.preset(p.ID)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Preset returns one preset by id.
func (s *CatalogService) Preset(id uuid.UUID) (chill.PresetView, error) {
	return s.preset(id)
}

func (s *CatalogService) preset(id uuid.UUID) (chill.PresetView, error) {
	p, ok := s.catalog.Preset(id)
	if !ok {
		return chill.PresetView{}, fmt.Errorf("%w: %s", ErrPresetNotFound, id)
	}
	d, err := cooling.TimeUntilTemperature(p.Target.Temperature, p.Initial.Temperature, p.Drink, p.Ambient)
	if err != nil {
		return chill.PresetView{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return presetView(p, d), nil
}

// Drinks lists every drink in catalog order.
func (s *CatalogService) Drinks() []chill.DrinkView {
	drinks := s.catalog.Drinks()
	out := make([]chill.DrinkView, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, drinkView(d))
	}
	return out
}

// Ambiences lists initial, cooling and target ambiences, in that order.
func (s *CatalogService) Ambiences() []chill.AmbienceView {
	var out []chill.AmbienceView
	for _, kind := range []catalog.Kind{catalog.KindInitial, catalog.KindCooling, catalog.KindTarget} {
		for _, a := range s.catalog.Ambiences(kind) {
			out = append(out, ambienceView(a, kind))
		}
	}
	return out
}
