package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleCatalog = `{
	"factions": {"data": [{"name": "Concord", "tags": ["lawful"]}]},
	"spawn_locations": {"data": [{"sector": "Perseus", "constellation": "Algol"}]},
	"items": {"data": [
		{"name": "Pulse Blade", "tier": 3, "tags": ["melee"]},
		{"name": "Medkit", "tier": 1}
	]},
	"ships": {"data": [{"name": "Sparrow", "tier": 1, "defenses": {"shield": {"max": 100}, "armor": {"max": 50}, "hull": {"max": 200}}}]},
	"future_section": {"data": [{"name": "ignored"}]}
}`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := cat.Size(); got != 5 {
		t.Fatalf("size=%d, want 5", got)
	}
	if got := len(cat.Scenarios); got != 0 {
		t.Fatalf("missing section decoded to %d entries, want 0", got)
	}
	if got := cat.SpawnLocations[0].DisplayName(); got != "Perseus - Algol" {
		t.Fatalf("spawn display name=%q", got)
	}
	if got := cat.Ships[0].Defenses.Hull.Max; got != 200 {
		t.Fatalf("ship hull=%d, want 200", got)
	}
}

func TestParseMalformed(t *testing.T) {
	cat, err := Parse([]byte("not json"))
	if err == nil {
		t.Fatalf("parse of garbage succeeded")
	}
	if cat.Size() != 0 {
		t.Fatalf("malformed parse returned non-empty catalog")
	}
}

func TestLoaderFetchesAndParses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	cat, err := NewLoader(srv.URL).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cat.Items[0].Name; got != "Pulse Blade" {
		t.Fatalf("first item=%q", got)
	}
}

func TestLoaderDegradesToEmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	cat, err := NewLoader(srv.URL).Load(context.Background())
	if err == nil {
		t.Fatalf("load of 404 succeeded")
	}
	// The catalog is still structurally usable.
	if got := cat.Size(); got != 0 {
		t.Fatalf("size=%d, want 0", got)
	}
	if got := cat.Entries(CategoryItem); got != nil {
		t.Fatalf("entries=%v, want nil", got)
	}

	srv.Close()
	if _, err := NewLoader(srv.URL).Load(context.Background()); err == nil {
		t.Fatalf("load against closed server succeeded")
	}
}
