package engine

import (
	"fmt"
	"sort"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/catalog"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/yamlenc"
)

// Conversion multipliers applied to direct investments at export time.
const (
	CreditsPerRP = 10000
	EXPPerRP     = 100
)

// Undecided fills the setup slots the user left empty.
const Undecided = "undecided"

// Export converts the ledger's final state into the ordered export document.
// It is the one hard gate in the flow: an over-budget ledger is refused and
// no document is produced.
func (l Ledger) Export() (yamlenc.Doc, error) {
	if l.Over() {
		return nil, OverBudgetError{Remaining: l.Remaining()}
	}

	setup := yamlenc.Doc{}
	setup = setup.Append("faction", exclusiveName(l, catalog.CategoryFaction))
	setup = setup.Append("spawn_location", exclusiveName(l, catalog.CategorySpawn))
	setup = setup.Append("scenario", exclusiveName(l, catalog.CategoryScenario))

	attrs := yamlenc.Doc{}
	for _, s := range StatOrder {
		attrs = attrs.Append(string(s), l.Stats[s])
	}
	setup = setup.Append("attributes", attrs)
	setup = setup.Append("credits", l.Investments[PoolCredits]*CreditsPerRP)

	exp := yamlenc.Doc{}
	for _, p := range ExpPools {
		exp = exp.Append(string(p), l.Investments[p]*EXPPerRP)
	}
	setup = setup.Append("experience", exp)

	setup = setup.Append("total_rp", l.TotalBudget)
	setup = setup.Append("rp_remaining", l.Remaining())

	inventory := yamlenc.Doc{}
	for _, cat := range []catalog.Category{catalog.CategoryItem, catalog.CategoryShip, catalog.CategorySkill} {
		group := yamlenc.Doc{}
		// Sequence numbers are derived fresh from insertion order here, never
		// stored on the records themselves.
		n := 0
		for _, r := range l.Records {
			if r.Category != cat {
				continue
			}
			n++
			key := fmt.Sprintf("%s_%02d", cat, n)
			group = group.Append(key, entrySchema(r.Entry))
		}
		inventory = inventory.Append(cat.Plural(), group)
	}

	return yamlenc.Doc{
		{Key: "character_setup", Value: setup},
		{Key: "inventory", Value: inventory},
	}, nil
}

func exclusiveName(l Ledger, cat catalog.Category) string {
	if rec := l.Selected(cat); rec != nil {
		return rec.Entry.DisplayName()
	}
	return Undecided
}

// entrySchema converts a catalog entry into an ordered document carrying the
// entry's full schema, mirroring the source data's field order. Optional
// fields are omitted when unset; tags always appear so an empty list shows as
// tags:[].
func entrySchema(e catalog.Entry) yamlenc.Doc {
	d := yamlenc.Doc{}
	if e.Name != "" {
		d = d.Append("name", e.Name)
	}
	if e.Sector != "" || e.Constellation != "" {
		d = d.Append("sector", e.Sector)
		d = d.Append("constellation", e.Constellation)
	}
	d = d.Append("tier", e.Tier)
	if e.Quality != "" {
		d = d.Append("quality", e.Quality)
	}
	d = d.Append("tags", toAnySlice(e.Tags))
	if e.Effects != "" {
		d = d.Append("effects", e.Effects)
	}
	if e.Description != "" {
		d = d.Append("description", e.Description)
	}
	if e.Details != "" {
		d = d.Append("details", e.Details)
	}
	if e.Defenses != nil {
		d = d.Append("defenses", yamlenc.Doc{
			{Key: "shield", Value: yamlenc.Doc{{Key: "max", Value: e.Defenses.Shield.Max}}},
			{Key: "armor", Value: yamlenc.Doc{{Key: "max", Value: e.Defenses.Armor.Max}}},
			{Key: "hull", Value: yamlenc.Doc{{Key: "max", Value: e.Defenses.Hull.Max}}},
		})
	}
	if len(e.DependentSkills) > 0 {
		d = d.Append("dependent_skills", sortedIntMap(e.DependentSkills))
	}
	if len(e.DependentStats) > 0 {
		d = d.Append("dependent_stats", sortedIntMap(e.DependentStats))
	}
	if e.BaseReputation != 0 {
		d = d.Append("base_reputation", e.BaseReputation)
	}
	return d
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// sortedIntMap orders prerequisite maps by key so the document is
// deterministic.
func sortedIntMap(m map[string]int) yamlenc.Doc {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	d := yamlenc.Doc{}
	for _, k := range keys {
		d = d.Append(k, m[k])
	}
	return d
}
