package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name:     "with path",
			err:      NewValidationError(CodeMinLength, "MsgId is shorter than the minimum length of 1").WithField("MsgId").WithPath("GrpHdr.MsgId"),
			expected: "validation error 1001 at GrpHdr.MsgId: MsgId is shorter than the minimum length of 1",
		},
		{
			name:     "without path",
			err:      NewValidationError(CodeRequired, "GrpHdr is required"),
			expected: "validation error 1003: GrpHdr is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationErrorAnnotationsCopy(t *testing.T) {
	base := NewValidationError(CodePattern, "BICFI does not match the required pattern (value: 'x')")

	annotated := base.WithField("BICFI").WithPath("FinInstnId.BICFI")

	assert.Empty(t, base.Field)
	assert.Empty(t, base.Path)
	assert.Equal(t, "BICFI", annotated.Field)
	assert.Equal(t, "FinInstnId.BICFI", annotated.Path)
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected EOF")

	withFile := &ParseError{File: "payment.xml", Err: cause}
	assert.Equal(t, "failed to parse payment.xml: unexpected EOF", withFile.Error())
	assert.ErrorIs(t, withFile, cause)

	withoutFile := &ParseError{Err: cause}
	assert.Equal(t, "failed to parse message: unexpected EOF", withoutFile.Error())
}

func TestUnknownMessageTypeError(t *testing.T) {
	err := &UnknownMessageTypeError{Element: "Envelope"}
	assert.Equal(t, `unknown message type for element "Envelope"`, err.Error())
}
