package engine

import (
	"errors"
	"testing"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/catalog"
)

func item(name string, tier int) catalog.Entry {
	return catalog.Entry{Name: name, Tier: tier}
}

func mustBuy(t *testing.T, l Ledger, ids IDSource, cat catalog.Category, e catalog.Entry) Ledger {
	t.Helper()
	out, err := l.Buy(ids, cat, e)
	if err != nil {
		t.Fatalf("buy %s: %v", e.Name, err)
	}
	return out
}

func TestRemainingIsDerived(t *testing.T) {
	ids := &SeqSource{}
	l := NewLedger()

	if got := l.Remaining(); got != DefaultBudget {
		t.Fatalf("fresh remaining=%d, want %d", got, DefaultBudget)
	}

	l = mustBuy(t, l, ids, catalog.CategoryItem, item("Pulse Blade", 3)) // 90
	l = l.SetInvestment(PoolCredits, 25)
	l = l.SetInvestment(PoolScience, 10)

	wantSpent := 90 + 25 + 10
	if got := l.Spent(); got != wantSpent {
		t.Fatalf("spent=%d, want %d", got, wantSpent)
	}
	if got := l.Remaining(); got != DefaultBudget-wantSpent {
		t.Fatalf("remaining=%d, want %d", got, DefaultBudget-wantSpent)
	}
}

func TestBuyRejectsOverdraft(t *testing.T) {
	ids := &SeqSource{}
	l := NewLedger().SetTotalBudget(100)

	before := l
	_, err := l.Buy(ids, catalog.CategoryShip, item("Dreadnought", 7)) // 1024
	var insufficient InsufficientPointsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("buy err=%v, want InsufficientPointsError", err)
	}
	if insufficient.Cost != 1024 || insufficient.Remaining != 100 {
		t.Fatalf("error carries cost=%d remaining=%d, want 1024/100", insufficient.Cost, insufficient.Remaining)
	}

	// The failed buy must leave no trace.
	if len(before.Records) != 0 || before.Remaining() != 100 {
		t.Fatalf("ledger changed by failed buy: %+v", before)
	}
}

func TestBuyExactlyRemainingSucceeds(t *testing.T) {
	ids := &SeqSource{}
	l := NewLedger().SetTotalBudget(90)

	l = mustBuy(t, l, ids, catalog.CategoryItem, item("Pulse Blade", 3)) // 90
	if got := l.Remaining(); got != 0 {
		t.Fatalf("remaining=%d, want 0", got)
	}
}

func TestCostFrozenAtBuyTime(t *testing.T) {
	ids := &SeqSource{}
	l := NewLedger()
	l = mustBuy(t, l, ids, catalog.CategoryItem, item("Pulse Blade", 3))

	if got := l.Records[0].Cost; got != 90 {
		t.Fatalf("record cost=%d, want 90", got)
	}

	// Mutating the entry's tier afterwards must not reprice the record.
	e := l.Records[0].Entry
	e.Tier = 7
	if got := l.Records[0].Cost; got != 90 {
		t.Fatalf("record cost drifted to %d after entry edit", got)
	}
	_ = e
}

func TestFallbackCostForMalformedTier(t *testing.T) {
	if got := CostFor(catalog.CategoryItem, 0); got != FallbackCost {
		t.Fatalf("CostFor(item, 0)=%d, want %d", got, FallbackCost)
	}
	if got := CostFor(catalog.CategorySkill, 99); got != FallbackCost {
		t.Fatalf("CostFor(skill, 99)=%d, want %d", got, FallbackCost)
	}
	if got := CostFor(catalog.CategoryFaction, 5); got != 0 {
		t.Fatalf("CostFor(faction, 5)=%d, want 0", got)
	}
}

func TestDuplicatePurchasesGetDistinctIDs(t *testing.T) {
	ids := &SeqSource{}
	l := NewLedger()
	l = mustBuy(t, l, ids, catalog.CategoryItem, item("Medkit", 1))
	l = mustBuy(t, l, ids, catalog.CategoryItem, item("Medkit", 1))

	if len(l.Records) != 2 {
		t.Fatalf("records=%d, want 2", len(l.Records))
	}
	if l.Records[0].ID == l.Records[1].ID {
		t.Fatalf("duplicate purchases share id %q", l.Records[0].ID)
	}
}

func TestRemoveRefundsByDerivation(t *testing.T) {
	ids := &SeqSource{}
	l := NewLedger()
	l = mustBuy(t, l, ids, catalog.CategoryItem, item("Medkit", 1))   // 30
	l = mustBuy(t, l, ids, catalog.CategorySkill, item("Hacking", 2)) // 80

	id := l.Records[0].ID
	l = l.Remove(id)

	if len(l.Records) != 1 {
		t.Fatalf("records=%d after remove, want 1", len(l.Records))
	}
	if got := l.Remaining(); got != DefaultBudget-80 {
		t.Fatalf("remaining=%d, want %d", got, DefaultBudget-80)
	}

	// Removing an unknown id is a no-op.
	same := l.Remove("sel-9999")
	if len(same.Records) != 1 || same.Remaining() != l.Remaining() {
		t.Fatalf("remove of unknown id changed the ledger")
	}
}

func TestExclusiveReplaceSwapsAtomically(t *testing.T) {
	ids := &SeqSource{}
	l := NewLedger()

	l = mustBuy(t, l, ids, catalog.CategoryFaction, item("Concord", 1))
	l = mustBuy(t, l, ids, catalog.CategoryFaction, item("Free Traders", 1))

	count := 0
	for _, r := range l.Records {
		if r.Category == catalog.CategoryFaction {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("faction records=%d, want 1", count)
	}
	if got := l.Selected(catalog.CategoryFaction).Entry.Name; got != "Free Traders" {
		t.Fatalf("selected faction=%q, want Free Traders", got)
	}
}

func TestExclusiveReplaceCreditsDisplacedCost(t *testing.T) {
	ids := &SeqSource{}

	// With scenarios costing nothing this is about the accounting shape:
	// a replacement's budget check runs against remaining + displaced cost.
	l := NewLedger().SetTotalBudget(50)
	l = mustBuy(t, l, ids, catalog.CategoryScenario, item("First Light", 1))
	l = mustBuy(t, l, ids, catalog.CategoryScenario, item("Cold Start", 1))
	if got := l.Remaining(); got != 50 {
		t.Fatalf("remaining=%d, want 50", got)
	}
}

func TestLoweringBudgetFlagsInsteadOfBlocking(t *testing.T) {
	ids := &SeqSource{}
	l := NewLedger()
	l = mustBuy(t, l, ids, catalog.CategoryShip, item("Corvette", 2)) // 240

	l = l.SetTotalBudget(100)
	if !l.Over() {
		t.Fatalf("Over()=false with remaining=%d", l.Remaining())
	}
	if got := l.Remaining(); got != -140 {
		t.Fatalf("remaining=%d, want -140", got)
	}
	// The existing record survives the shrink.
	if len(l.Records) != 1 {
		t.Fatalf("records=%d, want 1", len(l.Records))
	}
}

func TestStatExchangeIsClosed(t *testing.T) {
	l := NewLedger()

	sum := func(l Ledger) int {
		total := l.FreePoints
		for _, s := range StatOrder {
			total += l.Stats[s] - StatFloor
		}
		return total
	}
	if got := sum(l); got != FreeStatPoints {
		t.Fatalf("initial pool sum=%d, want %d", got, FreeStatPoints)
	}

	var err error
	for i := 0; i < FreeStatPoints; i++ {
		l, err = l.IncStat(StatSTR)
		if err != nil {
			t.Fatalf("inc %d: %v", i, err)
		}
	}
	if got := sum(l); got != FreeStatPoints {
		t.Fatalf("pool sum after spending=%d, want %d", got, FreeStatPoints)
	}

	if _, err := l.IncStat(StatDEX); !errors.Is(err, ErrNoFreePoints) {
		t.Fatalf("inc with empty pool err=%v, want ErrNoFreePoints", err)
	}

	l, err = l.DecStat(StatSTR)
	if err != nil {
		t.Fatalf("dec: %v", err)
	}
	if l.FreePoints != 1 || l.Stats[StatSTR] != StatFloor+FreeStatPoints-1 {
		t.Fatalf("after refund: free=%d STR=%d", l.FreePoints, l.Stats[StatSTR])
	}

	if _, err := l.DecStat(StatDEX); !errors.Is(err, ErrStatAtFloor) {
		t.Fatalf("dec at floor err=%v, want ErrStatAtFloor", err)
	}
	if _, err := l.IncStat(Stat("LCK")); !errors.Is(err, ErrUnknownStat) {
		t.Fatalf("inc unknown stat err=%v, want ErrUnknownStat", err)
	}
}

func TestSetInvestmentClampsAndValidates(t *testing.T) {
	l := NewLedger()

	l = l.SetInvestment(PoolGunnery, -5)
	if got := l.Investments[PoolGunnery]; got != 0 {
		t.Fatalf("negative investment stored as %d, want 0", got)
	}

	same := l.SetInvestment(Pool("luck"), 10)
	if got := same.Spent(); got != l.Spent() {
		t.Fatalf("invalid pool changed spent: %d != %d", got, l.Spent())
	}
}

func TestCoerceAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"25", 25},
		{" 7 ", 7},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"1.5", 0},
	}
	for _, c := range cases {
		if got := CoerceAmount(c.in); got != c.want {
			t.Fatalf("CoerceAmount(%q)=%d, want %d", c.in, got, c.want)
		}
	}
}

func TestOperationsDoNotAliasReceiver(t *testing.T) {
	ids := &SeqSource{}
	base := NewLedger()

	bought := mustBuy(t, base, ids, catalog.CategoryItem, item("Medkit", 1))
	if len(base.Records) != 0 {
		t.Fatalf("buy mutated receiver: %d records", len(base.Records))
	}

	invested := bought.SetInvestment(PoolCredits, 10)
	if bought.Investments[PoolCredits] != 0 {
		t.Fatalf("investment mutated receiver")
	}

	raised, err := invested.IncStat(StatWIL)
	if err != nil {
		t.Fatalf("inc: %v", err)
	}
	if invested.Stats[StatWIL] != StatFloor || raised.Stats[StatWIL] != StatFloor+1 {
		t.Fatalf("stat aliasing: old=%d new=%d", invested.Stats[StatWIL], raised.Stats[StatWIL])
	}
}
