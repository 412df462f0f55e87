package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"openclear/mx-message/internal/parsererror"
)

func TestErrorCollectorEmpty(t *testing.T) {
	coll := NewErrorCollector()

	assert.False(t, coll.HasErrors())
	assert.False(t, coll.HasCriticalErrors())
	assert.Equal(t, 0, coll.Len())
	assert.Empty(t, coll.Errors())
}

func TestErrorCollectorAppendOnly(t *testing.T) {
	coll := NewErrorCollector()
	first := parsererror.NewValidationError(parsererror.CodeMinLength, "MsgId is shorter than the minimum length of 1")
	second := parsererror.NewValidationError(parsererror.CodePattern, "BICFI does not match the required pattern (value: 'x')")

	coll.AddError(first)
	coll.AddError(second)
	coll.AddError(first)

	assert.Equal(t, 3, coll.Len())
	assert.Equal(t, first, coll.Errors()[0])
	assert.Equal(t, second, coll.Errors()[1])
	assert.Equal(t, first, coll.Errors()[2])
	assert.False(t, coll.HasCriticalErrors())
}

func TestErrorCollectorCriticalFlagSticks(t *testing.T) {
	coll := NewErrorCollector()

	coll.AddCriticalError(parsererror.NewValidationError(parsererror.CodeRequired, "GrpHdr is required"))
	coll.AddError(parsererror.NewValidationError(parsererror.CodeMaxLength, "MsgId exceeds the maximum length of 35"))

	assert.True(t, coll.HasCriticalErrors())
	assert.Equal(t, 2, coll.Len())
}

func TestParserConfigs(t *testing.T) {
	tests := []struct {
		name                       string
		cfg                        *ParserConfig
		wantFailFast               bool
		wantValidateOptionalFields bool
		wantCollectAllErrors       bool
	}{
		{
			name:                       "default",
			cfg:                        DefaultConfig(),
			wantFailFast:               false,
			wantValidateOptionalFields: true,
			wantCollectAllErrors:       true,
		},
		{
			name:                       "fail fast",
			cfg:                        FailFastConfig(),
			wantFailFast:               true,
			wantValidateOptionalFields: true,
			wantCollectAllErrors:       false,
		},
		{
			name:                       "lenient",
			cfg:                        LenientConfig(),
			wantFailFast:               false,
			wantValidateOptionalFields: false,
			wantCollectAllErrors:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFailFast, tt.cfg.FailFast)
			assert.Equal(t, tt.wantValidateOptionalFields, tt.cfg.ValidateOptionalFields)
			assert.Equal(t, tt.wantCollectAllErrors, tt.cfg.CollectAllErrors)
		})
	}
}
