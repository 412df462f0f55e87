package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/parsererror"
)

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		min        int
		max        int
		wantValid  bool
		wantCode   int
		wantErrors int
	}{
		{
			name:       "within bounds",
			value:      "REF-001",
			min:        1,
			max:        35,
			wantValid:  true,
			wantErrors: 0,
		},
		{
			name:       "exactly at minimum",
			value:      "A",
			min:        1,
			max:        35,
			wantValid:  true,
			wantErrors: 0,
		},
		{
			name:       "exactly at maximum",
			value:      "1234567890123456",
			min:        1,
			max:        16,
			wantValid:  true,
			wantErrors: 0,
		},
		{
			name:       "too short",
			value:      "",
			min:        1,
			max:        35,
			wantValid:  false,
			wantCode:   parsererror.CodeMinLength,
			wantErrors: 1,
		},
		{
			name:       "too long",
			value:      "12345678901234567",
			min:        1,
			max:        16,
			wantValid:  false,
			wantCode:   parsererror.CodeMaxLength,
			wantErrors: 1,
		},
		{
			name:       "zero max means unbounded",
			value:      "any length at all is fine here, really",
			min:        1,
			max:        0,
			wantValid:  true,
			wantErrors: 0,
		},
		{
			name:       "zero min means unbounded",
			value:      "",
			min:        0,
			max:        35,
			wantValid:  true,
			wantErrors: 0,
		},
		{
			name:       "multibyte runes counted as one character",
			value:      "Zürich Straße",
			min:        1,
			max:        13,
			wantValid:  true,
			wantErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			coll := NewErrorCollector()

			valid := ValidateLength(tt.value, "MsgId", tt.min, tt.max, "GrpHdr.MsgId", cfg, coll)

			assert.Equal(t, tt.wantValid, valid)
			assert.Len(t, coll.Errors(), tt.wantErrors)
			if tt.wantErrors > 0 {
				verr := coll.Errors()[0]
				assert.Equal(t, tt.wantCode, verr.Code)
				assert.Equal(t, "MsgId", verr.Field)
				assert.Equal(t, "GrpHdr.MsgId", verr.Path)
			}
		})
	}
}

func TestValidateLengthMessages(t *testing.T) {
	cfg := DefaultConfig()

	coll := NewErrorCollector()
	ValidateLength("", "MsgId", 1, 35, "GrpHdr.MsgId", cfg, coll)
	require.Len(t, coll.Errors(), 1)
	assert.Equal(t, "MsgId is shorter than the minimum length of 1", coll.Errors()[0].Message)

	coll = NewErrorCollector()
	ValidateLength("12345678901234567", "InstrId", 1, 16, "PmtId.InstrId", cfg, coll)
	require.Len(t, coll.Errors(), 1)
	assert.Equal(t, "InstrId exceeds the maximum length of 16", coll.Errors()[0].Message)
}

func TestValidateLengthFailFast(t *testing.T) {
	cfg := FailFastConfig()
	coll := NewErrorCollector()

	valid := ValidateLength("", "MsgId", 1, 35, "GrpHdr.MsgId", cfg, coll)

	assert.False(t, valid)
	assert.True(t, coll.HasCriticalErrors())
	assert.Len(t, coll.Errors(), 1)
}

func TestValidateLengthNotCriticalByDefault(t *testing.T) {
	cfg := DefaultConfig()
	coll := NewErrorCollector()

	ValidateLength("", "MsgId", 1, 35, "GrpHdr.MsgId", cfg, coll)

	assert.True(t, coll.HasErrors())
	assert.False(t, coll.HasCriticalErrors())
}

func TestValidatePattern(t *testing.T) {
	const bicPattern = `[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`

	tests := []struct {
		name      string
		value     string
		pattern   string
		wantValid bool
	}{
		{
			name:      "valid BIC8",
			value:     "DEUTDEFF",
			pattern:   bicPattern,
			wantValid: true,
		},
		{
			name:      "valid BIC11",
			value:     "DEUTDEFF500",
			pattern:   bicPattern,
			wantValid: true,
		},
		{
			name:      "lowercase BIC rejected",
			value:     "deutdeff",
			pattern:   bicPattern,
			wantValid: false,
		},
		{
			name:      "surrounding whitespace trimmed before matching",
			value:     "  DEUTDEFF  ",
			pattern:   bicPattern,
			wantValid: true,
		},
		{
			name:      "valid UETR",
			value:     "eb6305c9-1f7f-49de-aed0-16487c27b42d",
			pattern:   `[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`,
			wantValid: true,
		},
		{
			name:      "uppercase UETR rejected",
			value:     "EB6305C9-1F7F-49DE-AED0-16487C27B42D",
			pattern:   `[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`,
			wantValid: false,
		},
		{
			name:      "valid LEI",
			value:     "529900T8BM49AURSDO55",
			pattern:   `[A-Z0-9]{18,18}[0-9]{2,2}`,
			wantValid: true,
		},
		{
			name:      "timestamp with numeric offset",
			value:     "2024-06-01T10:30:00+00:00",
			pattern:   `.*(\+|-)((0[0-9])|(1[0-4])):[0-5][0-9]`,
			wantValid: true,
		},
		{
			name:      "timestamp with Z suffix rejected",
			value:     "2024-06-01T10:30:00Z",
			pattern:   `.*(\+|-)((0[0-9])|(1[0-4])):[0-5][0-9]`,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			coll := NewErrorCollector()

			valid := ValidatePattern(tt.value, "Fld", tt.pattern, "Parent.Fld", cfg, coll)

			assert.Equal(t, tt.wantValid, valid)
			if tt.wantValid {
				assert.False(t, coll.HasErrors())
			} else {
				require.Len(t, coll.Errors(), 1)
				verr := coll.Errors()[0]
				assert.Equal(t, parsererror.CodePattern, verr.Code)
				assert.Contains(t, verr.Message, "does not match the required pattern")
				assert.Contains(t, verr.Message, tt.value)
				assert.Equal(t, "Parent.Fld", verr.Path)
				assert.False(t, coll.HasCriticalErrors())
			}
		})
	}
}

func TestValidatePatternInvalidRegex(t *testing.T) {
	cfg := DefaultConfig()
	coll := NewErrorCollector()

	valid := ValidatePattern("anything", "Fld", `[unclosed`, "Parent.Fld", cfg, coll)

	assert.False(t, valid)
	assert.True(t, coll.HasCriticalErrors())
	require.Len(t, coll.Errors(), 1)
	assert.Equal(t, parsererror.CodeCritical, coll.Errors()[0].Code)
	assert.Contains(t, coll.Errors()[0].Message, "Invalid regex pattern for Fld")
}

func TestValidatePatternFailFast(t *testing.T) {
	cfg := FailFastConfig()
	coll := NewErrorCollector()

	valid := ValidatePattern("not-a-bic", "BICFI", `[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`, "FinInstnId.BICFI", cfg, coll)

	assert.False(t, valid)
	assert.True(t, coll.HasCriticalErrors())
}

func TestValidateRequired(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("present field passes", func(t *testing.T) {
		coll := NewErrorCollector()
		assert.True(t, ValidateRequired(true, "GrpHdr", "GrpHdr", cfg, coll))
		assert.False(t, coll.HasErrors())
	})

	t.Run("missing field is always critical", func(t *testing.T) {
		coll := NewErrorCollector()
		assert.False(t, ValidateRequired(false, "GrpHdr", "GrpHdr", cfg, coll))
		assert.True(t, coll.HasCriticalErrors())
		require.Len(t, coll.Errors(), 1)
		verr := coll.Errors()[0]
		assert.Equal(t, parsererror.CodeRequired, verr.Code)
		assert.Equal(t, "GrpHdr is required", verr.Message)
	})
}

func TestChildPath(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		field    string
		expected string
	}{
		{
			name:     "empty parent yields bare field",
			parent:   "",
			field:    "GrpHdr",
			expected: "GrpHdr",
		},
		{
			name:     "single level",
			parent:   "GrpHdr",
			field:    "MsgId",
			expected: "GrpHdr.MsgId",
		},
		{
			name:     "deep nesting",
			parent:   "CdtTrfTxInf.PmtId",
			field:    "EndToEndId",
			expected: "CdtTrfTxInf.PmtId.EndToEndId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChildPath(tt.parent, tt.field))
		})
	}
}
