package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/slimkit/pkg/config"
)

func TestBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"1", false, true},
		{"TRUE", false, true},
		{"on", false, true},
		{"yes", false, true},
		{"0", true, false},
		{"Off", true, false},
		{"no", true, false},
		{"", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL_SETTING", tt.value)
			assert.Equal(t, tt.want, config.Bool("TEST_BOOL_SETTING", tt.def))
		})
	}

	t.Run("missing", func(t *testing.T) {
		assert.True(t, config.Bool("TEST_BOOL_SETTING_MISSING", true))
		assert.False(t, config.Bool("TEST_BOOL_SETTING_MISSING", false))
	})
}

func TestString(t *testing.T) {
	t.Setenv("TEST_STR_SETTING", "hello\t \x1bworld\x7f")
	assert.Equal(t, "hello world", config.String("TEST_STR_SETTING", "def"))

	t.Setenv("TEST_STR_EMPTY", "")
	assert.Equal(t, "", config.String("TEST_STR_EMPTY", "def"))

	assert.Equal(t, "def", config.String("TEST_STR_MISSING", "def"))

	t.Setenv("TEST_STR_UNICODE", "grüße")
	assert.Equal(t, "grüße", config.String("TEST_STR_UNICODE", ""))
}

func TestDate(t *testing.T) {
	tests := map[string]time.Time{
		"2015-03-01":                time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC),
		"2015-03-01 12:30:00":       time.Date(2015, 3, 1, 12, 30, 0, 0, time.UTC),
		"2015-03-01T12:30":          time.Date(2015, 3, 1, 12, 30, 0, 0, time.UTC),
		"2015-03-01T12:30:00Z":      time.Date(2015, 3, 1, 12, 30, 0, 0, time.UTC),
		"2015-03-01T12:30:00+02:00": time.Date(2015, 3, 1, 10, 30, 0, 0, time.UTC),
	}
	for value, want := range tests {
		t.Run(value, func(t *testing.T) {
			t.Setenv("TEST_DATE_SETTING", value)
			got, ok := config.Date("TEST_DATE_SETTING")
			assert.True(t, ok)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("TEST_DATE_SETTING", "next tuesday")
		_, ok := config.Date("TEST_DATE_SETTING")
		assert.False(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := config.Date("TEST_DATE_SETTING_MISSING")
		assert.False(t, ok)
	})
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, config.Production, config.ParseEnvironment("prod"))
	assert.Equal(t, config.Production, config.ParseEnvironment(" Production "))
	assert.Equal(t, config.Staging, config.ParseEnvironment("stage"))
	assert.Equal(t, config.Development, config.ParseEnvironment("dev"))
	assert.Equal(t, config.Development, config.ParseEnvironment("whatever"))

	assert.True(t, config.Environment("prod").IsProduction())
	assert.True(t, config.Environment("staging").IsStaging())
	assert.True(t, config.Environment("").IsDevelopment())
}
