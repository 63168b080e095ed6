package engine

import (
	"errors"
	"fmt"
)

// InsufficientPointsError rejects a buy whose cost exceeds the remaining
// budget. The ledger is left unchanged; the user can remove selections and
// retry.
type InsufficientPointsError struct {
	Name      string
	Cost      int
	Remaining int
}

func (e InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: %s costs %d RP, %d remaining", e.Name, e.Cost, e.Remaining)
}

// OverBudgetError refuses an export while the ledger is over budget. This is
// the one hard gate in the flow.
type OverBudgetError struct {
	Remaining int
}

func (e OverBudgetError) Error() string {
	return fmt.Sprintf("over budget by %d RP; trim the selection before exporting", -e.Remaining)
}

// Stat reallocation guards. Both leave the ledger unchanged.
var (
	ErrNoFreePoints = errors.New("no free attribute points left")
	ErrStatAtFloor  = errors.New("attribute is already at its floor")
	ErrUnknownStat  = errors.New("unknown attribute")
)
