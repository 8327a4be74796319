package models

import (
	"errors"
	"fmt"
)

// ErrSchemaUnavailable is returned when the authoritative setting schema
// cannot be located or parsed. Without it no meaningful report can be
// produced, so it always aborts the run.
var ErrSchemaUnavailable = errors.New("settings schema unavailable")

// ErrUnresolvable marks a raw value that cannot be reduced to a comparable
// literal (variable references, calls, string concatenation, ...). The
// occurrence still counts as present; only the value comparison is skipped.
var ErrUnresolvable = errors.New("value is not a plain literal")

// PathNotFoundError reports a caller-specified config path that does not
// exist. Explicitly requested paths are never silently skipped.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("config path %q does not exist", e.Path)
}
