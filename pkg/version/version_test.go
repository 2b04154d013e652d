package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}

func TestIsRelease(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"v1.2.3", true},
		{"0.4.0", true},
		{"v1.0.0-rc.1", false},
		{"dev", false},
		{"", false},
		{"abc1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRelease(tt.v))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "v1.0.0", Format("v1.0.0"))
	assert.Equal(t, "v1.0.0-rc.1 (development build)", Format("v1.0.0-rc.1"))
	assert.Equal(t, "dev (development build)", Format(GetVersion()))
}
