package catalog

import (
	"reflect"
	"testing"
)

func testItems() []Entry {
	return []Entry{
		{Name: "Pulse Blade", Tier: 3, Tags: []string{"melee", "energy"}},
		{Name: "Medkit", Tier: 1, Tags: []string{"medical"}},
		{Name: "Plasma Rifle", Tier: 4, Tags: []string{"ranged", "energy"}},
		{Name: "Nano Suture", Tier: 2, Tags: []string{"medical"}},
		{Name: "Void Lance", Tier: 3, Tags: []string{"melee"}},
	}
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.DisplayName()
	}
	return out
}

func TestMatchSearchNameAndTags(t *testing.T) {
	e := Entry{Name: "Pulse Blade", Tier: 3, Tags: []string{"melee", "energy"}}

	if !Match(e, Filter{Search: "pulse"}) {
		t.Fatalf("case-insensitive name search failed")
	}
	if !Match(e, Filter{Search: "ENER"}) {
		t.Fatalf("tag substring search failed")
	}
	if Match(e, Filter{Search: "rifle"}) {
		t.Fatalf("unrelated search matched")
	}
}

func TestMatchSearchSpawnDisplayName(t *testing.T) {
	e := Entry{Sector: "Perseus", Constellation: "Algol", Tier: 1}
	if !Match(e, Filter{Search: "algol"}) {
		t.Fatalf("spawn location constellation not searchable")
	}
}

func TestFiltersCombineAsAND(t *testing.T) {
	got := Apply(testItems(), Filter{Search: "energy", Tier: 4})
	if want := []string{"Plasma Rifle"}; !reflect.DeepEqual(names(got), want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}

	got = Apply(testItems(), Filter{Tag: "medical", Tier: 3})
	if len(got) != 0 {
		t.Fatalf("conflicting filters matched %v", names(got))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	got := Apply(testItems(), Filter{Tier: 3})
	if want := []string{"Pulse Blade", "Void Lance"}; !reflect.DeepEqual(names(got), want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}
}

func TestTagsSortedDistinct(t *testing.T) {
	got := Tags(testItems())
	want := []string{"energy", "medical", "melee", "ranged"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	entries := testItems()
	v := NewView(CategoryItem)
	v.PageSize = 2
	v = v.WithPage(entries, 3)
	if v.Page != 3 {
		t.Fatalf("page=%d, want 3", v.Page)
	}

	if got := v.WithSearch("medical").Page; got != 1 {
		t.Fatalf("search left page at %d", got)
	}
	if got := v.WithTier(3).Page; got != 1 {
		t.Fatalf("tier change left page at %d", got)
	}
	if got := v.WithTag("melee").Page; got != 1 {
		t.Fatalf("tag change left page at %d", got)
	}
	if got := v.WithCategory(CategoryShip).Page; got != 1 {
		t.Fatalf("category change left page at %d", got)
	}
}

func TestCategoryChangeClearsFilters(t *testing.T) {
	v := NewView(CategoryItem).WithSearch("pulse").WithTier(3).WithTag("melee")
	v = v.WithCategory(CategoryShip)
	if v.Filter != (Filter{}) {
		t.Fatalf("filters survived category change: %+v", v.Filter)
	}
}

func TestPageClamping(t *testing.T) {
	entries := testItems() // 5 entries
	v := NewView(CategoryItem)
	v.PageSize = 2 // 3 pages

	if got := v.WithPage(entries, 0).Page; got != 1 {
		t.Fatalf("page below range clamped to %d, want 1", got)
	}
	if got := v.WithPage(entries, 99).Page; got != 3 {
		t.Fatalf("page above range clamped to %d, want 3", got)
	}
}

func TestTotalPagesNeverZero(t *testing.T) {
	v := NewView(CategoryItem)
	if got := v.TotalPages(nil); got != 1 {
		t.Fatalf("TotalPages(empty)=%d, want 1", got)
	}
	v = v.WithSearch("no such thing")
	if got := v.TotalPages(testItems()); got != 1 {
		t.Fatalf("TotalPages(no matches)=%d, want 1", got)
	}
	if got := v.Slice(testItems()); got != nil {
		t.Fatalf("Slice(no matches)=%v, want nil", got)
	}
}

func TestSliceWindows(t *testing.T) {
	entries := testItems()
	v := NewView(CategoryItem)
	v.PageSize = 2

	first := v.Slice(entries)
	if want := []string{"Pulse Blade", "Medkit"}; !reflect.DeepEqual(names(first), want) {
		t.Fatalf("page 1 = %v, want %v", names(first), want)
	}

	last := v.WithPage(entries, 3).Slice(entries)
	if want := []string{"Void Lance"}; !reflect.DeepEqual(names(last), want) {
		t.Fatalf("page 3 = %v, want %v", names(last), want)
	}
}
