package catalog

import (
	"fmt"
	"strings"
)

// Category identifies one of the browsable sections of the reference data.
type Category string

const (
	CategoryFaction  Category = "faction"
	CategorySpawn    Category = "spawn_location"
	CategoryScenario Category = "scenario"
	CategoryItem     Category = "item"
	CategoryShip     Category = "ship"
	CategorySkill    Category = "skill"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryFaction,
	CategorySpawn,
	CategoryScenario,
	CategoryItem,
	CategoryShip,
	CategorySkill,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFaction, CategorySpawn, CategoryScenario, CategoryItem, CategoryShip, CategorySkill:
		return true
	default:
		return false
	}
}

// Purchasable reports whether entries in this category consume RP when selected.
func (c Category) Purchasable() bool {
	switch c {
	case CategoryItem, CategoryShip, CategorySkill:
		return true
	default:
		return false
	}
}

// Exclusive reports whether at most one selection of this category may be held.
// Factions, spawn locations and scenarios are single-choice; a new selection
// replaces the previous one.
func (c Category) Exclusive() bool {
	switch c {
	case CategoryFaction, CategorySpawn, CategoryScenario:
		return true
	default:
		return false
	}
}

// Plural returns the catalog section key used in the wire format and in the
// export document ("items", "spawn_locations", ...).
func (c Category) Plural() string {
	switch c {
	case CategoryFaction:
		return "factions"
	case CategorySpawn:
		return "spawn_locations"
	case CategoryScenario:
		return "scenarios"
	case CategoryItem:
		return "items"
	case CategoryShip:
		return "ships"
	case CategorySkill:
		return "skills"
	default:
		return string(c) + "s"
	}
}

// Label returns a short human heading for the category.
func (c Category) Label() string {
	switch c {
	case CategoryFaction:
		return "Factions"
	case CategorySpawn:
		return "Spawn Locations"
	case CategoryScenario:
		return "Scenarios"
	case CategoryItem:
		return "Items"
	case CategoryShip:
		return "Ships"
	case CategorySkill:
		return "Skills"
	default:
		return string(c)
	}
}

// ParseCategory accepts singular or plural spellings, case-insensitive.
func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "faction", "factions":
		return CategoryFaction, nil
	case "spawn", "spawn_location", "spawn_locations", "location", "locations":
		return CategorySpawn, nil
	case "scenario", "scenarios":
		return CategoryScenario, nil
	case "item", "items":
		return CategoryItem, nil
	case "ship", "ships":
		return CategoryShip, nil
	case "skill", "skills":
		return CategorySkill, nil
	default:
		return "", fmt.Errorf("unknown category: %q", input)
	}
}

const (
	TierMin = 1
	TierMax = 7
)

// Defense is a single defensive layer of a ship.
type Defense struct {
	Max int `json:"max"`
}

// Defenses holds the three ship defense layers.
type Defenses struct {
	Shield Defense `json:"shield"`
	Armor  Defense `json:"armor"`
	Hull   Defense `json:"hull"`
}

// Entry is one row of the reference data. Entries are immutable after load;
// selections reference them but never modify them. Name is the identity key
// within a category. Only ships carry Defenses; only spawn locations carry
// Sector/Constellation instead of Name.
type Entry struct {
	Name        string   `json:"name,omitempty"`
	Tier        int      `json:"tier,omitempty"`
	Quality     string   `json:"quality,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Effects     string   `json:"effects,omitempty"`
	Description string   `json:"description,omitempty"`
	Details     string   `json:"details,omitempty"`

	Defenses        *Defenses      `json:"defenses,omitempty"`
	DependentSkills map[string]int `json:"dependent_skills,omitempty"`
	DependentStats  map[string]int `json:"dependent_stats,omitempty"`

	BaseReputation int `json:"base_reputation,omitempty"`

	Sector        string `json:"sector,omitempty"`
	Constellation string `json:"constellation,omitempty"`
}

// DisplayName returns the name shown in lists and written to the export
// document. Spawn locations are identified by sector and constellation.
func (e Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	if e.Sector != "" || e.Constellation != "" {
		return e.Sector + " - " + e.Constellation
	}
	return ""
}

// Catalog is the full reference data set, one slice per category, in original
// source order.
type Catalog struct {
	Factions       []Entry
	SpawnLocations []Entry
	Scenarios      []Entry
	Items          []Entry
	Ships          []Entry
	Skills         []Entry
}

// Empty returns a structurally valid catalog with no entries. Used as the
// fallback when the remote data cannot be loaded.
func Empty() Catalog {
	return Catalog{}
}

// Entries returns the entry list for a category. The returned slice must be
// treated as read-only.
func (c Catalog) Entries(cat Category) []Entry {
	switch cat {
	case CategoryFaction:
		return c.Factions
	case CategorySpawn:
		return c.SpawnLocations
	case CategoryScenario:
		return c.Scenarios
	case CategoryItem:
		return c.Items
	case CategoryShip:
		return c.Ships
	case CategorySkill:
		return c.Skills
	default:
		return nil
	}
}

// Size returns the total number of entries across all categories.
func (c Catalog) Size() int {
	n := 0
	for _, cat := range Categories {
		n += len(c.Entries(cat))
	}
	return n
}
