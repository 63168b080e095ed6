package engine

import (
	"strconv"
	"strings"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/catalog"
)

const (
	// DefaultBudget is the starting Resonance Point allowance.
	DefaultBudget = 1000

	// FreeStatPoints is the starting free attribute pool.
	FreeStatPoints = 6

	// StatFloor is the minimum value of every attribute.
	StatFloor = 1
)

// SelectionRecord is one purchased (or chosen) catalog entry. Cost is frozen
// at buy time and never re-derived from the ladder.
type SelectionRecord struct {
	ID       string
	Category catalog.Category
	Cost     int
	Entry    catalog.Entry
}

// Ledger is the budget-tracking accumulator for one build session. It has
// value semantics: every operation returns a new Ledger and leaves the
// receiver untouched, so a failed operation can never leave partial state
// behind and the UI layer can treat states as snapshots.
type Ledger struct {
	TotalBudget int
	Records     []SelectionRecord
	Stats       map[Stat]int
	FreePoints  int
	Investments map[Pool]int
}

// NewLedger returns the session-start state: empty selection, all stats at
// the floor, all pools at zero.
func NewLedger() Ledger {
	l := Ledger{
		TotalBudget: DefaultBudget,
		FreePoints:  FreeStatPoints,
		Stats:       make(map[Stat]int, len(StatOrder)),
		Investments: make(map[Pool]int, len(Pools)),
	}
	for _, s := range StatOrder {
		l.Stats[s] = StatFloor
	}
	for _, p := range Pools {
		l.Investments[p] = 0
	}
	return l
}

// clone deep-copies the mutable parts so With*-style operations never alias
// the receiver's maps or record slice.
func (l Ledger) clone() Ledger {
	out := l
	out.Records = make([]SelectionRecord, len(l.Records))
	copy(out.Records, l.Records)
	out.Stats = make(map[Stat]int, len(l.Stats))
	for k, v := range l.Stats {
		out.Stats[k] = v
	}
	out.Investments = make(map[Pool]int, len(l.Investments))
	for k, v := range l.Investments {
		out.Investments[k] = v
	}
	return out
}

// Spent is the sum of record costs plus direct investments.
func (l Ledger) Spent() int {
	spent := 0
	for _, r := range l.Records {
		spent += r.Cost
	}
	for _, v := range l.Investments {
		spent += v
	}
	return spent
}

// Remaining is always derived, never stored. It may go negative when the
// total budget is lowered under an existing selection; that state is flagged
// rather than blocked.
func (l Ledger) Remaining() int {
	return l.TotalBudget - l.Spent()
}

// Over reports whether the selection exceeds the budget.
func (l Ledger) Over() bool {
	return l.Remaining() < 0
}

// Selected returns the record currently held for an exclusive category, or
// nil.
func (l Ledger) Selected(cat catalog.Category) *SelectionRecord {
	for i := range l.Records {
		if l.Records[i].Category == cat {
			return &l.Records[i]
		}
	}
	return nil
}

// Buy resolves the entry's cost, checks the budget and appends a new record.
// Exclusive categories (faction, spawn location, scenario) replace their
// existing record in place instead of appending; the displaced record's cost
// is credited back within the same atomic step. The budget check happens only
// here — removal and budget edits never re-validate existing records.
func (l Ledger) Buy(ids IDSource, cat catalog.Category, e catalog.Entry) (Ledger, error) {
	cost := CostFor(cat, e.Tier)

	refund := 0
	replaceAt := -1
	if cat.Exclusive() {
		for i := range l.Records {
			if l.Records[i].Category == cat {
				refund = l.Records[i].Cost
				replaceAt = i
				break
			}
		}
	}

	if l.Remaining()+refund < cost {
		return l, InsufficientPointsError{Name: e.DisplayName(), Cost: cost, Remaining: l.Remaining()}
	}

	rec := SelectionRecord{
		ID:       ids.Next(),
		Category: cat,
		Cost:     cost,
		Entry:    e,
	}

	out := l.clone()
	if replaceAt >= 0 {
		out.Records[replaceAt] = rec
	} else {
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// Remove deletes the record with the matching id. A missing id is a no-op,
// not an error; removal never triggers a budget re-check.
func (l Ledger) Remove(id string) Ledger {
	found := false
	for i := range l.Records {
		if l.Records[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return l
	}

	out := l.clone()
	records := out.Records[:0]
	for _, r := range out.Records {
		if r.ID != id {
			records = append(records, r)
		}
	}
	out.Records = records
	return out
}

// SetInvestment overwrites a pool's value. Negative values clamp to zero; no
// budget check is performed here — over-budget is surfaced through Remaining.
func (l Ledger) SetInvestment(p Pool, value int) Ledger {
	if !p.IsValid() {
		return l
	}
	if value < 0 {
		value = 0
	}
	out := l.clone()
	out.Investments[p] = value
	return out
}

// CoerceAmount turns free-form numeric input into a non-negative integer.
// Anything unparseable becomes 0; parse failures never reach the user.
func CoerceAmount(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SetTotalBudget replaces the allowance. Existing records are not
// re-validated; Remaining may go negative as a result.
func (l Ledger) SetTotalBudget(total int) Ledger {
	out := l.clone()
	out.TotalBudget = total
	return out
}

// IncStat spends one free point on a stat. The exchange is closed:
// Σ(stat−floor) + FreePoints is invariant across IncStat/DecStat.
func (l Ledger) IncStat(s Stat) (Ledger, error) {
	if !s.IsValid() {
		return l, ErrUnknownStat
	}
	if l.FreePoints <= 0 {
		return l, ErrNoFreePoints
	}
	out := l.clone()
	out.Stats[s]++
	out.FreePoints--
	return out, nil
}

// DecStat refunds one point from a stat back into the free pool. Stats never
// drop below the floor.
func (l Ledger) DecStat(s Stat) (Ledger, error) {
	if !s.IsValid() {
		return l, ErrUnknownStat
	}
	if l.Stats[s] <= StatFloor {
		return l, ErrStatAtFloor
	}
	out := l.clone()
	out.Stats[s]--
	out.FreePoints++
	return out, nil
}
