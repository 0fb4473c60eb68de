// Package catalog holds the static drinks, ambiences and presets offered to
// users. Ids are derived from stable slugs so they survive restarts.
package catalog

import (
	"fmt"

	"chill_timer/internal/beverage"
	"chill_timer/internal/thermo"

	"github.com/google/uuid"
)

var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://chill-timer.local/catalog"))

// ID returns the stable id of a catalog slug.
func ID(slug string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(slug))
}

// Kind groups ambiences by the role they play in a preset.
type Kind string

const (
	KindInitial Kind = "initial"
	KindCooling Kind = "cooling"
	KindTarget  Kind = "target"
)

// Catalog is an immutable lookup over drinks, ambiences and presets.
type Catalog struct {
	drinks    []beverage.Drink
	ambiences map[Kind][]beverage.Ambience
	presets   []beverage.Preset

	drinkByID    map[uuid.UUID]beverage.Drink
	ambienceByID map[uuid.UUID]beverage.Ambience
	presetByID   map[uuid.UUID]beverage.Preset
}

// New indexes the given entries. Duplicate ids are rejected.
func New(drinks []beverage.Drink, ambiences map[Kind][]beverage.Ambience, presets []beverage.Preset) (*Catalog, error) {
	c := &Catalog{
		drinks:       drinks,
		ambiences:    ambiences,
		presets:      presets,
		drinkByID:    make(map[uuid.UUID]beverage.Drink, len(drinks)),
		ambienceByID: make(map[uuid.UUID]beverage.Ambience),
		presetByID:   make(map[uuid.UUID]beverage.Preset, len(presets)),
	}
	for _, d := range drinks {
		if _, dup := c.drinkByID[d.ID()]; dup {
			return nil, fmt.Errorf("duplicate drink id %s (%s)", d.ID(), d.Name())
		}
		c.drinkByID[d.ID()] = d
	}
	for _, kind := range []Kind{KindInitial, KindCooling, KindTarget} {
		for _, a := range ambiences[kind] {
			if _, dup := c.ambienceByID[a.ID]; dup {
				return nil, fmt.Errorf("duplicate ambience id %s (%s)", a.ID, a.Name)
			}
			c.ambienceByID[a.ID] = a
		}
	}
	for _, p := range presets {
		if _, dup := c.presetByID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate preset id %s (%s)", p.ID, p.Name)
		}
		c.presetByID[p.ID] = p
	}
	return c, nil
}

// Drinks returns all drinks in catalog order.
func (c *Catalog) Drinks() []beverage.Drink {
	return append([]beverage.Drink(nil), c.drinks...)
}

// Drink looks up a drink by id.
func (c *Catalog) Drink(id uuid.UUID) (beverage.Drink, bool) {
	d, ok := c.drinkByID[id]
	return d, ok
}

// Ambiences returns the ambiences of one kind in catalog order.
func (c *Catalog) Ambiences(kind Kind) []beverage.Ambience {
	return append([]beverage.Ambience(nil), c.ambiences[kind]...)
}

// Ambience looks up an ambience of any kind by id.
func (c *Catalog) Ambience(id uuid.UUID) (beverage.Ambience, bool) {
	a, ok := c.ambienceByID[id]
	return a, ok
}

// Presets returns all presets in catalog order.
func (c *Catalog) Presets() []beverage.Preset {
	return append([]beverage.Preset(nil), c.presets...)
}

// Preset looks up a preset by id.
func (c *Catalog) Preset(id uuid.UUID) (beverage.Preset, bool) {
	p, ok := c.presetByID[id]
	return p, ok
}

func medium(m thermo.Medium) *thermo.Medium { return &m }
