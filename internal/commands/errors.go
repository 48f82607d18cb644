package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/colonyops/todo/internal/core/todo"
)

// ErrUsage marks errors caused by malformed command lines.
var ErrUsage = errors.New("usage")

func usageError(usage string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage)
}

// parseIndex converts a positional argument into a pending index. Anything
// that is not a non-negative integer is rejected before the snapshot is read.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", todo.ErrInvalidIndex, arg)
	}
	return n, nil
}
