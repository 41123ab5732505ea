package utils

import "fmt"

// EnumValidator restricts a string field to a fixed value set; used for job
// statuses and extraction tiers, which are stored as plain strings.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("%q is not an allowed value", s)
	}
}
