package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationMethod(t *testing.T) {
	tests := []struct {
		method NavigationMethod
		name   string
		valid  bool
	}{
		{NavigationRadio, "Radio", true},
		{NavigationSelect, "Select", true},
		{NavigationSpec, "Spec", true},
		{"kwargs", "Unknown", false},
		{"", "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.Equal(t, tt.name, tt.method.GetName())
			assert.Equal(t, tt.valid, tt.method.IsValid())
		})
	}
}

func TestIsDevMode(t *testing.T) {
	t.Setenv("ENVIRONMENT", Development)
	assert.True(t, IsDevMode())

	t.Setenv("ENVIRONMENT", "PROD")
	assert.False(t, IsDevMode())
}
