package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource yields unique selection record ids. Uniqueness must hold even for
// two selections of the same entry made in the same instant, which rules out
// timestamp-based ids.
type IDSource interface {
	Next() string
}

type uuidSource struct{}

func (uuidSource) Next() string { return uuid.NewString() }

// NewIDSource returns the production UUID-backed source.
func NewIDSource() IDSource { return uuidSource{} }

// SeqSource is a deterministic counter source for tests.
type SeqSource struct {
	n int
}

func (s *SeqSource) Next() string {
	s.n++
	return fmt.Sprintf("sel-%04d", s.n)
}
