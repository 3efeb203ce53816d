package source

// VentSchedule is a ventilation schedule with its PH operating periods.
type VentSchedule struct {
	Identifier  string `json:"identifier" validate:"required"`
	DisplayName string `json:"display_name"`
	Properties  struct {
		Ph *VentSchedulePh `json:"ph"`
	} `json:"properties"`
}

// VentSchedulePh is the utilization pattern of a ventilation schedule.
type VentSchedulePh struct {
	OperatingDaysWk    float64 `json:"operating_days_wk" validate:"gte=0,lte=7"`
	OperatingWeeksYear float64 `json:"operating_weeks_year" validate:"gte=0,lte=52"`
	OperatingPeriods   struct {
		High     VentPeriod `json:"high"`
		Standard VentPeriod `json:"standard"`
		Basic    VentPeriod `json:"basic"`
		Minimum  VentPeriod `json:"minimum"`
	} `json:"operating_periods"`
}

// VentPeriod is one speed period.
type VentPeriod struct {
	OperatingHours float64 `json:"operating_hours" validate:"gte=0,lte=24"`
	OperationSpeed float64 `json:"operation_speed" validate:"gte=0"`
}
