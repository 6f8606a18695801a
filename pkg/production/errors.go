package production

import (
	"fmt"
)

// SnapshotIntegrityError reports truly malformed caller data, such as
// duplicate order ids within one snapshot. Expected business conditions
// (zero denominators, blank mold ids, over-ceiling approval attempts) are
// represented as typed result fields instead and never raise errors.
type SnapshotIntegrityError struct {
	Reason string
}

func (e *SnapshotIntegrityError) Error() string {
	return fmt.Sprintf("snapshot integrity: %s", e.Reason)
}

func integrityErrorf(format string, args ...interface{}) error {
	return &SnapshotIntegrityError{Reason: fmt.Sprintf(format, args...)}
}
