package config

import (
	"fmt"
	"time"
)

// ValidateTimeout validates timeout duration. Zero means unbounded.
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout < 0 {
		return fmt.Errorf("%s timeout cannot be negative", name)
	}
	return nil
}
