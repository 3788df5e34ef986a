package orbit

import "errors"

var (
	// ErrUnknownFamily indicates a class label outside the closed family set.
	ErrUnknownFamily = errors.New("orbit: unknown family")

	// ErrUnknownRegime indicates a regime name other than clean or realistic.
	ErrUnknownRegime = errors.New("orbit: unknown regime")
)
