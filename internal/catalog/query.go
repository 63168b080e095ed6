package catalog

import (
	"sort"
	"strings"
)

// DefaultPageSize matches the original six-card grid.
const DefaultPageSize = 6

// TierAll disables the tier filter.
const TierAll = 0

// TagAll disables the tag filter.
const TagAll = ""

// Filter is the set of active browse filters. The zero value matches
// everything.
type Filter struct {
	Search string
	Tier   int    // TierAll or a specific tier 1..7
	Tag    string // TagAll or an exact tag
}

// Match reports whether the entry passes every active filter. The search
// string matches case-insensitively against the entry name or any tag.
func Match(e Entry, f Filter) bool {
	if f.Tier != TierAll && e.Tier != f.Tier {
		return false
	}
	if f.Tag != TagAll {
		found := false
		for _, t := range e.Tags {
			if t == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if strings.Contains(strings.ToLower(e.DisplayName()), q) {
			return true
		}
		for _, t := range e.Tags {
			if strings.Contains(strings.ToLower(t), q) {
				return true
			}
		}
		return false
	}
	return true
}

// Apply returns the entries passing the filter, preserving original order.
// The input slice is never mutated.
func Apply(entries []Entry, f Filter) []Entry {
	var out []Entry
	for _, e := range entries {
		if Match(e, f) {
			out = append(out, e)
		}
	}
	return out
}

// Tags returns the sorted distinct tags across the entries.
func Tags(entries []Entry) []string {
	seen := map[string]bool{}
	for _, e := range entries {
		for _, t := range e.Tags {
			seen[t] = true
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// View is the browse position: active category, filters and current page.
// It is a value type; every change that affects which entries are visible
// goes through a With* method so the page reset rule cannot be bypassed.
type View struct {
	Category Category
	Filter   Filter
	Page     int // 1-based
	PageSize int
}

func NewView(cat Category) View {
	return View{Category: cat, Page: 1, PageSize: DefaultPageSize}
}

// WithCategory switches category, clears all filters and resets to page 1.
func (v View) WithCategory(cat Category) View {
	v.Category = cat
	v.Filter = Filter{}
	v.Page = 1
	return v
}

// WithSearch sets the search string and resets to page 1.
func (v View) WithSearch(q string) View {
	v.Filter.Search = q
	v.Page = 1
	return v
}

// WithTier sets the tier filter and resets to page 1.
func (v View) WithTier(tier int) View {
	v.Filter.Tier = tier
	v.Page = 1
	return v
}

// WithTag sets the tag filter and resets to page 1.
func (v View) WithTag(tag string) View {
	v.Filter.Tag = tag
	v.Page = 1
	return v
}

// WithPage moves to the given page, clamped to [1, TotalPages].
func (v View) WithPage(entries []Entry, page int) View {
	total := v.TotalPages(entries)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	v.Page = page
	return v
}

// Matching returns the full filtered sequence for this view.
func (v View) Matching(entries []Entry) []Entry {
	return Apply(entries, v.Filter)
}

// TotalPages is never less than 1, even for an empty result set.
func (v View) TotalPages(entries []Entry) int {
	size := v.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	n := len(v.Matching(entries))
	total := (n + size - 1) / size
	if total < 1 {
		total = 1
	}
	return total
}

// Slice returns the entries visible on the current page.
func (v View) Slice(entries []Entry) []Entry {
	size := v.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	matched := v.Matching(entries)
	start := (v.Page - 1) * size
	if start < 0 || start >= len(matched) {
		return nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end]
}
