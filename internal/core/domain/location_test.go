package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("https://app.example/cb?code=abc123&state=xyz")

	require.NoError(t, err)
	assert.Equal(t, "https://app.example/cb", loc.OriginPath)
	assert.Equal(t, "abc123", loc.Query["code"])
	assert.Equal(t, "xyz", loc.Query["state"])
	assert.Equal(t, "abc123", loc.Code())
}

func TestParseLocation_NoQuery(t *testing.T) {
	loc, err := ParseLocation("https://app.example/cb")

	require.NoError(t, err)
	assert.Equal(t, "https://app.example/cb", loc.OriginPath)
	assert.Empty(t, loc.Code())
}

func TestParseLocation_DuplicateKeysLastWins(t *testing.T) {
	loc, err := ParseLocation("https://app.example/cb?code=first&code=second")

	require.NoError(t, err)
	assert.Equal(t, "second", loc.Code())
}

func TestParseLocation_StripsFragment(t *testing.T) {
	loc, err := ParseLocation("https://app.example/cb?code=abc#section")

	require.NoError(t, err)
	assert.Equal(t, "https://app.example/cb", loc.OriginPath)
	assert.Equal(t, "abc", loc.Code())
}

func TestParseLocation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"relative path", "/cb?code=abc"},
		{"no host", "https:///cb"},
		{"garbage", "http://bad host/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLocation(tt.in)
			assert.Error(t, err)
		})
	}
}
