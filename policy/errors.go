package policy

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	// ErrConfig marks a malformed horizon, inflation series, parameter definition or reform.
	ErrConfig = fmt.Errorf("config error: %w", commerr.ErrInvalidArgument)
	// ErrRange marks a year outside the horizon.
	ErrRange = fmt.Errorf("range error: %w", commerr.ErrOutOfRange)
	// ErrShape marks rows of one parameter with different widths.
	ErrShape = fmt.Errorf("shape error: %w", commerr.ErrInvalidArgument)
)

func configErrorf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, a...))
}

func rangeErrorf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrRange, fmt.Sprintf(format, a...))
}

func shapeErrorf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, a...))
}
