package camt108_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/models/camt108"
	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/sample"
	"openclear/mx-message/internal/validation"
)

func str(s string) *string { return &s }

func validate(msg *camt108.ChequeCancellationOrStopRequestV01, cfg *validation.ParserConfig) *validation.ErrorCollector {
	coll := validation.NewErrorCollector()
	msg.Validate("", cfg, coll)
	return coll
}

func TestChequeCancellationValid(t *testing.T) {
	coll := validate(sample.ChequeCancellation(), validation.DefaultConfig())

	assert.False(t, coll.HasErrors(), "errors: %v", coll.Errors())
}

func TestChequeCancellationViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(msg *camt108.ChequeCancellationOrStopRequestV01)
		wantCode int
		wantPath string
	}{
		{
			name: "empty message id",
			mutate: func(msg *camt108.ChequeCancellationOrStopRequestV01) {
				msg.GrpHdr.MsgId = ""
			},
			wantCode: parsererror.CodeMinLength,
			wantPath: "GrpHdr.MsgId",
		},
		{
			name: "cheque number over 16 characters",
			mutate: func(msg *camt108.ChequeCancellationOrStopRequestV01) {
				msg.Chq.ChqNb = "12345678901234567"
			},
			wantCode: parsererror.CodeMaxLength,
			wantPath: "Chq.ChqNb",
		},
		{
			name: "original instruction id with illegal characters",
			mutate: func(msg *camt108.ChequeCancellationOrStopRequestV01) {
				msg.Chq.OrgnlInstrId = "###"
			},
			wantCode: parsererror.CodePattern,
			wantPath: "Chq.OrgnlInstrId",
		},
		{
			name: "instruction id empty when present",
			mutate: func(msg *camt108.ChequeCancellationOrStopRequestV01) {
				msg.Chq.InstrId = str("")
			},
			wantCode: parsererror.CodeMinLength,
			wantPath: "Chq.InstrId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := sample.ChequeCancellation()
			tt.mutate(msg)

			coll := validate(msg, validation.DefaultConfig())

			require.True(t, coll.HasErrors())
			verr := coll.Errors()[0]
			assert.Equal(t, tt.wantCode, verr.Code)
			assert.Equal(t, tt.wantPath, verr.Path)
		})
	}
}

func TestChequeCancellationReasonCodes(t *testing.T) {
	codes := []camt108.CBPRChequeCancellationReasonCode{
		camt108.CBPRChequeCancellationReasonCodeDUPL,
		camt108.CBPRChequeCancellationReasonCodeCUST,
		camt108.CBPRChequeCancellationReasonCodeFRAD,
		camt108.CBPRChequeCancellationReasonCodeLOST,
		camt108.CBPRChequeCancellationReasonCodeNARR,
	}

	for _, code := range codes {
		msg := sample.ChequeCancellation()
		reason := code
		msg.Chq.ChqCxlOrStopRsn.Rsn.Cd = &reason

		coll := validate(msg, validation.DefaultConfig())

		assert.False(t, coll.HasErrors(), "code %s: %v", code, coll.Errors())
	}
}
