package engine

import (
	"errors"
	"fmt"
)

// Error taxonomy from spec.md §7. Run returns a Go error only for
// nonsensical config values (ErrInvalidConfig) and for a snapshot with no
// courses (model.ErrInputInfeasible), both before the search begins; all
// other infeasibility is data carried in the Result, never a thrown failure.

// ErrInvalidConfig wraps a nonsensical Config value (population-size
// <= 0, a rate outside [0,1], ...).
var ErrInvalidConfig = errors.New("invalid engine config")

func invalidConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
