// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"regexp"

	"github.com/hay-kot/criterio"
)

// MaxAccountNameLen is the longest accepted account name.
const MaxAccountNameLen = 64

var accountNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// AccountName validates a storage account name: lowercase letters, digits,
// '.', '_' and '-', starting with a letter or digit.
func AccountName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > MaxAccountNameLen {
		return fmt.Errorf("name must be at most %d characters", MaxAccountNameLen)
	}
	if !accountNameRe.MatchString(name) {
		return fmt.Errorf("name %q must be lowercase letters, digits, '.', '_' or '-'", name)
	}
	return nil
}

// AccountNameField returns a criterio validator for account names.
func AccountNameField(field, name string) error {
	return criterio.Run(field, name, AccountName)
}
