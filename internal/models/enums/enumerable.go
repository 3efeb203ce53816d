package enums

import (
	"fmt"
	"strconv"
	"strings"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

// Enumerable is a string value restricted to an allowed list. The list is
// 1-based when addressed by number, and may contain "" holes: numbered slots
// that exist in the downstream tool but carry no value. Assigning a hole is
// an error.
type Enumerable struct {
	name    string
	allowed []string
	value   string
}

// NewEnumerable creates an Enumerable and assigns the initial value.
func NewEnumerable(name string, allowed []string, value string) (*Enumerable, error) {
	e := &Enumerable{name: name, allowed: allowed}
	if err := e.Set(value); err != nil {
		return nil, err
	}
	return e, nil
}

// MustEnumerable is NewEnumerable for package-level defaults known to be valid.
func MustEnumerable(name string, allowed []string, value string) *Enumerable {
	e, err := NewEnumerable(name, allowed, value)
	if err != nil {
		panic(err)
	}
	return e
}

// Set assigns a value. Accepted forms are the bare name ("RESIDENTIAL"), the
// 1-based number ("1") and the numbered name ("1-RESIDENTIAL"). Names are
// matched case-insensitively. A rejected value leaves the current one intact.
func (e *Enumerable) Set(value string) error {
	resolved, err := e.resolve(value)
	if err != nil {
		return err
	}
	e.value = resolved
	return nil
}

func (e *Enumerable) resolve(value string) (string, error) {
	v := strings.TrimSpace(value)

	if n, err := strconv.Atoi(v); err == nil {
		return e.byNumber(n, value)
	}

	if i := strings.Index(v, "-"); i > 0 {
		if n, err := strconv.Atoi(v[:i]); err == nil {
			resolved, err := e.byNumber(n, value)
			if err != nil {
				return "", err
			}
			if !strings.EqualFold(resolved, strings.TrimSpace(v[i+1:])) {
				return "", notAllowed(e.name, value)
			}
			return resolved, nil
		}
	}

	if v != "" {
		for _, a := range e.allowed {
			if a != "" && strings.EqualFold(a, v) {
				return a, nil
			}
		}
	}
	return "", notAllowed(e.name, value)
}

func (e *Enumerable) byNumber(n int, raw string) (string, error) {
	if n < 1 || n > len(e.allowed) || e.allowed[n-1] == "" {
		return "", notAllowed(e.name, raw)
	}
	return e.allowed[n-1], nil
}

// Value returns the assigned name.
func (e *Enumerable) Value() string {
	return e.value
}

// Number returns the 1-based position of the assigned name.
func (e *Enumerable) Number() int {
	for i, a := range e.allowed {
		if a == e.value {
			return i + 1
		}
	}
	return 0
}

// Name returns the enumeration's name.
func (e *Enumerable) Name() string {
	return e.name
}

// Allowed returns a copy of the allowed list, holes included.
func (e *Enumerable) Allowed() []string {
	return append([]string(nil), e.allowed...)
}

// String renders the numbered form used by the downstream tools, e.g.
// "1-RESIDENTIAL".
func (e *Enumerable) String() string {
	return fmt.Sprintf("%d-%s", e.Number(), e.value)
}

func notAllowed(name, value string) error {
	return fmt.Errorf("%w: %q is not an allowed value for %s",
		phxerrors.ErrEnumValueNotAllowed, value, name)
}
