package errors

import "unicode"

// maxNetNameLength bounds net names coming from netlist files.
const maxNetNameLength = 256

// ValidateNetName validates a net name from an untrusted netlist file.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//
// EDA-tool-specific naming conventions (bus notation, hierarchy
// separators) are not interpreted here.
func ValidateNetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidNet, "net name cannot be empty")
	}

	if len(name) > maxNetNameLength {
		return New(ErrCodeInvalidNet, "net name too long (max %d characters)", maxNetNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNet, "net name contains control characters")
		}
	}

	return nil
}
