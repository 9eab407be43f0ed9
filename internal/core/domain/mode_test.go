package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cross/internal/core/domain"
)

func lookupFrom(env map[string]string) domain.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want domain.BuildMode
	}{
		{name: "absent", env: map[string]string{}, want: domain.Debug},
		{name: "release", env: map[string]string{"BUILD_MODE": "RELEASE"}, want: domain.Release},
		{name: "lower case release", env: map[string]string{"BUILD_MODE": "release"}, want: domain.Debug},
		{name: "padded", env: map[string]string{"BUILD_MODE": " RELEASE"}, want: domain.Debug},
		{name: "empty value", env: map[string]string{"BUILD_MODE": ""}, want: domain.Debug},
		{name: "debug", env: map[string]string{"BUILD_MODE": "DEBUG"}, want: domain.Debug},
		{name: "other variable", env: map[string]string{"MODE": "RELEASE"}, want: domain.Debug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := lookupFrom(tt.env)
			got := domain.SelectMode(lookup, domain.DefaultModeEnv)
			assert.Equal(t, tt.want, got)
			// Pure: repeated calls agree.
			assert.Equal(t, got, domain.SelectMode(lookup, domain.DefaultModeEnv))
		})
	}
}

func TestSelectMode_NilLookup(t *testing.T) {
	assert.Equal(t, domain.Debug, domain.SelectMode(nil, domain.DefaultModeEnv))
}

func TestBuildMode_String(t *testing.T) {
	assert.Equal(t, "debug", domain.Debug.String())
	assert.Equal(t, "release", domain.Release.String())
}
