package infer

import (
	"fmt"
	"strings"
)

// UnboundError reports identifiers that occur free in the expression but
// are missing from the environment. Names are sorted and deduplicated.
type UnboundError struct {
	Names []string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("unbound identifiers: %s", strings.Join(e.Names, ", "))
}
