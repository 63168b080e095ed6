package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// section is the wire shape of one catalog category: {"data": [entry, ...]}.
type section struct {
	Data []Entry `json:"data"`
}

// Parse decodes the raw catalog document. Unknown top-level keys are ignored;
// missing sections decode to empty slices.
func Parse(raw []byte) (Catalog, error) {
	var doc map[string]section
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Empty(), fmt.Errorf("decode catalog: %w", err)
	}
	return Catalog{
		Factions:       doc["factions"].Data,
		SpawnLocations: doc["spawn_locations"].Data,
		Scenarios:      doc["scenarios"].Data,
		Items:          doc["items"].Data,
		Ships:          doc["ships"].Data,
		Skills:         doc["skills"].Data,
	}, nil
}

// Loader fetches the catalog document from a remote URL once per session.
type Loader struct {
	url    string
	client *http.Client
}

func NewLoader(url string) *Loader {
	return &Loader{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Load fetches and parses the catalog. On any failure it returns the empty
// catalog together with the error, so callers always get a usable (if empty)
// data set and can surface the failure as an advisory rather than a crash.
func (l *Loader) Load(ctx context.Context) (Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return Empty(), fmt.Errorf("catalog request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", l.url).Msg("catalog fetch failed; using empty catalog")
		return Empty(), fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("url", l.url).Msg("catalog fetch returned non-OK status; using empty catalog")
		return Empty(), fmt.Errorf("catalog fetch: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Empty(), fmt.Errorf("catalog read: %w", err)
	}

	cat, err := Parse(raw)
	if err != nil {
		log.Warn().Err(err).Msg("catalog parse failed; using empty catalog")
		return Empty(), err
	}

	log.Debug().Int("entries", cat.Size()).Msg("catalog loaded")
	return cat, nil
}
