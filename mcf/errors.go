package mcf

import (
	"errors"
	"fmt"
)

// ErrInfeasible is returned when no flow satisfies the conservation and
// capacity constraints of an instance.
var ErrInfeasible = errors.New("mcf: no feasible flow")

// ConfigError is returned when an instance is rejected before the
// solver runs, such as an arc with crossed or negative capacity bounds.
// Arc is the id of the offending arc, or -1 if the problem is not tied
// to a single arc.
type ConfigError struct {
	Arc    int
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Arc < 0 {
		return fmt.Sprintf("mcf: %s", e.Reason)
	}
	return fmt.Sprintf("mcf: arc %d: %s", e.Arc, e.Reason)
}
