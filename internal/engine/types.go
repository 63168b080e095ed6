package engine

import "strings"

// Stat is one of the five allocatable attributes.
type Stat string

const (
	StatSTR Stat = "STR"
	StatDEX Stat = "DEX"
	StatCON Stat = "CON"
	StatINT Stat = "INT"
	StatWIL Stat = "WIL"
)

// StatOrder fixes display and export order.
var StatOrder = []Stat{StatSTR, StatDEX, StatCON, StatINT, StatWIL}

func (s Stat) IsValid() bool {
	switch s {
	case StatSTR, StatDEX, StatCON, StatINT, StatWIL:
		return true
	default:
		return false
	}
}

// ParseStat parses user input to a Stat.
func ParseStat(input string) (Stat, bool) {
	s := Stat(strings.ToUpper(strings.TrimSpace(input)))
	return s, s.IsValid()
}

// Pool names a direct-investment pool: RP converted straight into a numeric
// resource rather than spent on a catalog selection.
type Pool string

const (
	PoolCredits Pool = "credits"

	PoolBaseEXP     Pool = "baseEXP"
	PoolEngineering Pool = "engineering"
	PoolPsionics    Pool = "psionics"
	PoolScience     Pool = "science"
	PoolGunnery     Pool = "gunnery"
	PoolCybernetics Pool = "cybernetics"
	PoolDetection   Pool = "detection"
)

// ExpPools fixes the experience pool order used in the export document.
var ExpPools = []Pool{
	PoolBaseEXP,
	PoolEngineering,
	PoolPsionics,
	PoolScience,
	PoolGunnery,
	PoolCybernetics,
	PoolDetection,
}

// Pools lists every direct-investment pool, credits first.
var Pools = append([]Pool{PoolCredits}, ExpPools...)

func (p Pool) IsValid() bool {
	for _, known := range Pools {
		if p == known {
			return true
		}
	}
	return false
}
