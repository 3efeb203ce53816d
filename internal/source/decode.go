package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/models/climate"
)

// Decode reads a source model from r, links every space to its host room
// and validates the result.
func Decode(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode source model: %w", err)
	}
	m.Link()
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Link sets the Host of every space. It is idempotent.
func (m *Model) Link() {
	for _, room := range m.Rooms {
		if room == nil || room.Properties.Ph == nil {
			continue
		}
		for _, sp := range room.Properties.Ph.Spaces {
			if sp != nil {
				sp.Host = room
			}
		}
	}
}

// MissingPhProperties reports the first room without PH properties, wrapped
// as a missing-properties error.
func (m *Model) MissingPhProperties() error {
	for _, room := range m.Rooms {
		if room.Properties.Ph == nil {
			return phxerrors.MissingProperties(fmt.Sprintf("Room %q", room.Name()), "ph")
		}
	}
	return nil
}

// Validate runs struct validation over m. Field errors are reported with
// their JSON names and wrapped in ErrInvalidSourceModel.
func Validate(m *Model) error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		return fmt.Errorf("%w: %v", phxerrors.ErrInvalidSourceModel, err)
	}
	msgs := make([]string, 0, len(verrs))
	monthly := false
	for _, fe := range verrs {
		if fe.Tag() == monthsTag {
			monthly = true
			msgs = append(msgs, fmt.Sprintf("%s has %d values, want %d", fe.Namespace(), seriesLen(fe.Value()), climate.Months))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	if monthly {
		return fmt.Errorf("%w: %w: %v", phxerrors.ErrInvalidSourceModel, phxerrors.ErrInvalidMonthlyData, msgs)
	}
	return fmt.Errorf("%w: %v", phxerrors.ErrInvalidSourceModel, msgs)
}
