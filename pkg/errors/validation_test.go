package errors

import (
	"strings"
	"testing"
)

func TestValidateNetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "GND", false},
		{"signal with index", "DATA[3]", false},
		{"component pin", "U1.7", false},
		{"empty", "", true},
		{"control character", "GND\x00", true},
		{"newline", "VCC\n", true},
		{"too long", strings.Repeat("N", 257), true},
		{"max length ok", strings.Repeat("N", 256), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNetName(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidNet) {
				t.Errorf("ValidateNetName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidNet)
			}
		})
	}
}
