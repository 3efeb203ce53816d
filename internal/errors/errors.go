package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error code constants for standardized error reporting
const (
	CodeMissingProperties    = "MISSING_PROPERTIES"
	CodeUnknownEquipmentType = "UNKNOWN_EQUIPMENT_TYPE"
	CodeInvalidMonthlyData   = "INVALID_MONTHLY_DATA"
	CodeFuelNotAllowed       = "FUEL_NOT_ALLOWED"
	CodeEnumValueNotAllowed  = "ENUM_VALUE_NOT_ALLOWED"
	CodeSubsystemNotFound    = "SUBSYSTEM_NOT_FOUND"
	CodeScheduleOverTarget   = "SCHEDULE_OVER_TARGET"
	CodeUnknownSourceType    = "UNKNOWN_SOURCE_TYPE"
	CodeInvalidSourceModel   = "INVALID_SOURCE_MODEL"
	CodeInternal             = "INTERNAL_ERROR"
)

// Sentinel errors, one per error kind. Call sites wrap them with %w so callers
// can match with errors.Is.
var (
	ErrMissingProperties    = errors.New("missing properties")
	ErrUnknownEquipmentType = errors.New("unknown equipment type")
	ErrInvalidMonthlyData   = errors.New("invalid monthly data")
	ErrFuelNotAllowed       = errors.New("fuel not allowed")
	ErrEnumValueNotAllowed  = errors.New("enum value not allowed")
	ErrSubsystemNotFound    = errors.New("mechanical subsystem not found")
	ErrScheduleOverTarget   = errors.New("operating period hours do not match target")
	ErrUnknownSourceType    = errors.New("unknown source object type")
	ErrInvalidSourceModel   = errors.New("invalid source model")
)

// MissingPropertiesError is returned when a source object lacks an expected
// extension (usually the .ph properties).
type MissingPropertiesError struct {
	Object   string
	Property string
}

func (e *MissingPropertiesError) Error() string {
	return fmt.Sprintf("%s: %s is missing the %q properties", ErrMissingProperties, e.Object, e.Property)
}

func (e *MissingPropertiesError) Unwrap() error {
	return ErrMissingProperties
}

// MissingProperties builds a MissingPropertiesError.
func MissingProperties(object, property string) error {
	return &MissingPropertiesError{Object: object, Property: property}
}

// UnknownEquipmentTypeError is returned by the device and appliance factories
// when a source class tag has no constructor mapping.
type UnknownEquipmentTypeError struct {
	Value   string
	Allowed []string
}

func (e *UnknownEquipmentTypeError) Error() string {
	allowed := append([]string(nil), e.Allowed...)
	sort.Strings(allowed)
	return fmt.Sprintf("%s: got %q, only [%s] are allowed",
		ErrUnknownEquipmentType, e.Value, strings.Join(allowed, ", "))
}

func (e *UnknownEquipmentTypeError) Unwrap() error {
	return ErrUnknownEquipmentType
}

// UnknownEquipmentType builds an UnknownEquipmentTypeError from the offending
// value and the keys of the constructor map.
func UnknownEquipmentType(value string, allowed []string) error {
	return &UnknownEquipmentTypeError{Value: value, Allowed: allowed}
}

// Code maps an error to its standardized code. Unknown errors map to
// CodeInternal.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingProperties):
		return CodeMissingProperties
	case errors.Is(err, ErrUnknownEquipmentType):
		return CodeUnknownEquipmentType
	case errors.Is(err, ErrInvalidMonthlyData):
		return CodeInvalidMonthlyData
	case errors.Is(err, ErrFuelNotAllowed):
		return CodeFuelNotAllowed
	case errors.Is(err, ErrEnumValueNotAllowed):
		return CodeEnumValueNotAllowed
	case errors.Is(err, ErrSubsystemNotFound):
		return CodeSubsystemNotFound
	case errors.Is(err, ErrScheduleOverTarget):
		return CodeScheduleOverTarget
	case errors.Is(err, ErrUnknownSourceType):
		return CodeUnknownSourceType
	case errors.Is(err, ErrInvalidSourceModel):
		return CodeInvalidSourceModel
	default:
		return CodeInternal
	}
}

// IsWarning reports whether err is one of the non-fatal kinds. Only the
// over-target schedule diagnostic is a warning.
func IsWarning(err error) bool {
	return errors.Is(err, ErrScheduleOverTarget)
}
