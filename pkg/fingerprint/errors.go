package fingerprint

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is wrapped by every configuration error. Use
// errors.Is to test for it.
var ErrInvalidConfiguration = errors.New("fingerprint: invalid configuration")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
