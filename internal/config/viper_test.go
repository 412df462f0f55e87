package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserConfigForProfile(t *testing.T) {
	tests := []struct {
		name                       string
		profile                    string
		wantErr                    bool
		wantFailFast               bool
		wantValidateOptionalFields bool
	}{
		{
			name:                       "empty profile is default",
			profile:                    "",
			wantFailFast:               false,
			wantValidateOptionalFields: true,
		},
		{
			name:                       "default",
			profile:                    "default",
			wantFailFast:               false,
			wantValidateOptionalFields: true,
		},
		{
			name:                       "fail-fast",
			profile:                    "fail-fast",
			wantFailFast:               true,
			wantValidateOptionalFields: true,
		},
		{
			name:                       "failfast spelling",
			profile:                    "failfast",
			wantFailFast:               true,
			wantValidateOptionalFields: true,
		},
		{
			name:                       "lenient",
			profile:                    "lenient",
			wantFailFast:               false,
			wantValidateOptionalFields: false,
		},
		{
			name:                       "case insensitive",
			profile:                    "LENIENT",
			wantFailFast:               false,
			wantValidateOptionalFields: false,
		},
		{
			name:    "unknown profile",
			profile: "strict",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := ParserConfigForProfile(tt.profile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFailFast, pc.FailFast)
			assert.Equal(t, tt.wantValidateOptionalFields, pc.ValidateOptionalFields)
		})
	}
}

func TestConfigParserConfigOverride(t *testing.T) {
	skipOptional := false
	var cfg Config
	cfg.Validation.Profile = "default"
	cfg.Validation.ValidateOptionalFields = &skipOptional

	pc, err := cfg.ParserConfig()

	require.NoError(t, err)
	assert.False(t, pc.ValidateOptionalFields)
	assert.False(t, pc.FailFast)
}

func TestConfigParserConfigUnknownProfile(t *testing.T) {
	var cfg Config
	cfg.Validation.Profile = "bogus"

	_, err := cfg.ParserConfig()

	assert.Error(t, err)
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "default", cfg.Validation.Profile)
	assert.Equal(t, ".", cfg.Report.Directory)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("MX_TEST_KEY", "from-env")

	assert.Equal(t, "from-env", GetEnv("MX_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("MX_TEST_KEY_MISSING", "fallback"))
}

func TestConfigureLoggingLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()

	assert.Equal(t, "debug", logger.GetLevel().String())
}
