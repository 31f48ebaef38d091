package capability

import (
	"errors"
	"fmt"
)

// ErrMissingCapability matches every MissingCapabilityError under errors.Is
var ErrMissingCapability = errors.New("terminal missing capability")

// MissingCapabilityError names the first required capability absent from a database
type MissingCapabilityError struct {
	Name string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("terminal missing capability: '%s'", e.Name)
}

func (e *MissingCapabilityError) Is(target error) bool {
	return target == ErrMissingCapability
}
