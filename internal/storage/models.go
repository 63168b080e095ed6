package storage

import "time"

// Snapshot is one archived export: the final state of a build session. It is
// the only thing that outlives the session.
type Snapshot struct {
	ID        int64
	CreatedAt time.Time

	TotalBudget int
	Spent       int
	Remaining   int

	Delivered bool
	Document  string
}
