package request

import "fmt"

// sprintf applies format substitution only when arguments are present, so
// pre-formatted provider messages containing % verbs pass through intact.
func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
