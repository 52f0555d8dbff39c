package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTeams(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "acme/platform", []string{"acme/platform"}},
		{"multiple with spaces", " acme/platform , acme/frontend ", []string{"acme/platform", "acme/frontend"}},
		{"trailing comma", "acme/platform,", []string{"acme/platform"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitTeams(tt.input))
		})
	}
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt("12"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-3"))
	assert.Error(t, validatePositiveInt("abc"))
}
