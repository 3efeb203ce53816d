package schedules

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/models/ids"
)

var ventPatternIDs = ids.NewCounter("utilization_pattern_vent")

// Default operating period values for a new ventilation pattern.
const (
	DefaultOperatingDays  = 7.0
	DefaultOperatingWeeks = 52.0
)

// VentOperatingPeriod is one of the four named fan-speed periods.
type VentOperatingPeriod struct {
	Hours         float64
	SpeedFraction float64
}

// WeightedHours is Hours × SpeedFraction.
func (p VentOperatingPeriod) WeightedHours() float64 {
	return p.Hours * p.SpeedFraction
}

// UtilizationPatternVent describes how a ventilation system runs over a day.
type UtilizationPatternVent struct {
	ID             int
	Identifier     string
	DisplayName    string
	OperatingDays  float64
	OperatingWeeks float64

	High     VentOperatingPeriod
	Standard VentOperatingPeriod
	Basic    VentOperatingPeriod
	Minimum  VentOperatingPeriod
}

// NewUtilizationPatternVent creates a pattern with the next id, a fresh UUID
// identifier and a full-speed 24 hour default.
func NewUtilizationPatternVent(displayName string) *UtilizationPatternVent {
	return &UtilizationPatternVent{
		ID:             ventPatternIDs.Next(),
		Identifier:     uuid.NewString(),
		DisplayName:    displayName,
		OperatingDays:  DefaultOperatingDays,
		OperatingWeeks: DefaultOperatingWeeks,
		High:           VentOperatingPeriod{Hours: 24, SpeedFraction: 1.0},
		Standard:       VentOperatingPeriod{Hours: 0, SpeedFraction: 0.77},
		Basic:          VentOperatingPeriod{Hours: 0, SpeedFraction: 0.54},
		Minimum:        VentOperatingPeriod{Hours: 0, SpeedFraction: 0.4},
	}
}

// Periods returns the four periods in high, standard, basic, minimum order.
func (p *UtilizationPatternVent) Periods() [4]VentOperatingPeriod {
	return [4]VentOperatingPeriod{p.High, p.Standard, p.Basic, p.Minimum}
}

// TotalHours sums the hours of the four periods.
func (p *UtilizationPatternVent) TotalHours() float64 {
	total := 0.0
	for _, per := range p.Periods() {
		total += per.Hours
	}
	return total
}

// AverageOperatingFraction is Σ(hours × speed) / 24.
func (p *UtilizationPatternVent) AverageOperatingFraction() float64 {
	total := 0.0
	for _, per := range p.Periods() {
		total += per.WeightedHours()
	}
	return total / 24
}

// ForceMaxUtilizationHours sets the high period's hours to whatever remains
// of maxHours after the other three periods, rounded to tol decimal places.
func (p *UtilizationPatternVent) ForceMaxUtilizationHours(maxHours float64, tol int) {
	rest := p.Standard.Hours + p.Basic.Hours + p.Minimum.Hours
	scale := math.Pow(10, float64(tol))
	p.High.Hours = math.Round((maxHours-rest)*scale) / scale
}

// Validate checks that the four periods add up to target hours.
func (p *UtilizationPatternVent) Validate(target float64) error {
	total := p.TotalHours()
	if math.Abs(total-target) > periodHoursTolerance {
		return fmt.Errorf("%w: ventilation pattern %q periods total %.3f hours, expected %.3f",
			phxerrors.ErrScheduleOverTarget, p.DisplayName, total, target)
	}
	return nil
}

// ToOperationSchedule lays the four periods end to end over a day, so the
// generic schedule checks apply to ventilation patterns too.
func (p *UtilizationPatternVent) ToOperationSchedule() *OperationSchedule {
	s := &OperationSchedule{
		Identifier:           p.Identifier,
		DisplayName:          p.DisplayName,
		OperatingDaysPerYear: p.OperatingDays * p.OperatingWeeks,
	}
	start := 0.0
	names := [4]string{"high", "standard", "basic", "minimum"}
	for i, per := range p.Periods() {
		s.AddPeriod(DailyOperationPeriod{
			Name:              names[i],
			StartHour:         start,
			EndHour:           start + per.Hours,
			OperationFraction: per.SpeedFraction,
		})
		start += per.Hours
	}
	return s
}
