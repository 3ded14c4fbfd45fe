package projection

import (
	"errors"
	"fmt"
)

// Timeframe is the projection horizon in days.
type Timeframe int

const (
	Days30 Timeframe = 30
	Days60 Timeframe = 60
	Days90 Timeframe = 90
)

// DefaultTimeframe is used when a caller does not pick a horizon.
const DefaultTimeframe = Days90

var ErrInvalidTimeframe = errors.New("timeframe must be one of 30, 60, 90")

// ParseTimeframe accepts 30, 60 or 90. Zero selects DefaultTimeframe.
func ParseTimeframe(days int) (Timeframe, error) {
	switch Timeframe(days) {
	case Days30, Days60, Days90:
		return Timeframe(days), nil
	case 0:
		return DefaultTimeframe, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidTimeframe, days)
}

func (t Timeframe) Days() int { return int(t) }

type horizonTable struct {
	salaryGrowth   float64
	existingGrowth float64
	newGrowth      float64
	maxNew         int
	projects       int
	readinessBonus int
}

var horizons = map[Timeframe]horizonTable{
	Days30: {salaryGrowth: 0.08, existingGrowth: 0.10, newGrowth: 1.2, maxNew: 45, projects: 2, readinessBonus: 10},
	Days60: {salaryGrowth: 0.18, existingGrowth: 0.20, newGrowth: 1.8, maxNew: 60, projects: 3, readinessBonus: 20},
	Days90: {salaryGrowth: 0.30, existingGrowth: 0.30, newGrowth: 2.4, maxNew: 75, projects: 4, readinessBonus: 30},
}

func (t Timeframe) table() horizonTable {
	if h, ok := horizons[t]; ok {
		return h
	}
	return horizons[DefaultTimeframe]
}

// Phases lists the roadmap keys covered by the horizon.
func (t Timeframe) Phases() []string {
	phases := []string{"day30"}
	if t >= Days60 {
		phases = append(phases, "day60")
	}
	if t >= Days90 {
		phases = append(phases, "day90")
	}
	return phases
}
