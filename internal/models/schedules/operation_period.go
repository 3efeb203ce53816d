// Package schedules holds daily operating periods and ventilation
// utilization patterns.
package schedules

import (
	"fmt"
	"math"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

// periodHoursTolerance is the slack allowed when checking that operating
// periods add up to a target number of hours.
const periodHoursTolerance = 1e-3

// DailyOperationPeriod is a contiguous part of the day run at a fraction of
// full operation.
type DailyOperationPeriod struct {
	Name              string
	StartHour         float64
	EndHour           float64
	OperationFraction float64 // 0-1
}

// OperatingHours is EndHour - StartHour.
func (p DailyOperationPeriod) OperatingHours() float64 {
	return p.EndHour - p.StartHour
}

// WeightedOperationHours is OperatingHours × OperationFraction.
func (p DailyOperationPeriod) WeightedOperationHours() float64 {
	return p.OperatingHours() * p.OperationFraction
}

// OperationSchedule is the PH extension of a ruleset schedule: a set of
// daily periods plus how many days a year they apply.
type OperationSchedule struct {
	Identifier           string
	DisplayName          string
	OperatingDaysPerYear float64
	Periods              []DailyOperationPeriod
}

// AddPeriod appends a daily operating period.
func (s *OperationSchedule) AddPeriod(p DailyOperationPeriod) {
	s.Periods = append(s.Periods, p)
}

// AnnualAverageOperatingFraction is
// Σ(weighted hours × days) / (days × 24).
func (s *OperationSchedule) AnnualAverageOperatingFraction() float64 {
	if s.OperatingDaysPerYear <= 0 {
		return 0
	}
	total := 0.0
	for _, p := range s.Periods {
		total += p.WeightedOperationHours() * s.OperatingDaysPerYear
	}
	return total / (s.OperatingDaysPerYear * 24)
}

// TotalOperatingHours sums the operating hours of every period.
func (s *OperationSchedule) TotalOperatingHours() float64 {
	total := 0.0
	for _, p := range s.Periods {
		total += p.OperatingHours()
	}
	return total
}

// ValidateOperatingPeriodHours checks that the periods add up to target hours
// within 1e-3. A mismatch is reported as an ErrScheduleOverTarget diagnostic,
// which callers treat as a warning.
func (s *OperationSchedule) ValidateOperatingPeriodHours(target float64) error {
	total := s.TotalOperatingHours()
	if math.Abs(total-target) > periodHoursTolerance {
		return fmt.Errorf("%w: schedule %q operating periods total %.3f hours, expected %.3f",
			phxerrors.ErrScheduleOverTarget, s.DisplayName, total, target)
	}
	return nil
}
