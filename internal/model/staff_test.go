package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidateWorkingHours(t *testing.T) {
	tests := []struct {
		name    string
		start   *string
		end     *string
		wantErr bool
	}{
		{"both nil", nil, nil, false},
		{"only start", strPtr("09:00"), nil, false},
		{"only end", nil, strPtr("17:00"), false},
		{"valid range", strPtr("09:00"), strPtr("17:00"), false},
		{"end equals start", strPtr("09:00"), strPtr("09:00"), true},
		{"end before start", strPtr("17:00"), strPtr("09:00"), true},
		{"bad start format", strPtr("9am"), strPtr("17:00"), true},
		{"bad end format", strPtr("09:00"), strPtr("17h"), true},
		{"out of range hour", strPtr("25:00"), nil, true},
		{"out of range minute", strPtr("09:61"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWorkingHours(tt.start, tt.end)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
