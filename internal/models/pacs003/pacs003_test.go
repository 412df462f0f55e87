package pacs003_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/models/pacs003"
	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/sample"
	"openclear/mx-message/internal/validation"
)

func str(s string) *string { return &s }

func validate(msg *pacs003.FIToFICustomerDirectDebitV08, cfg *validation.ParserConfig) *validation.ErrorCollector {
	coll := validation.NewErrorCollector()
	msg.Validate("", cfg, coll)
	return coll
}

func TestDirectDebitValid(t *testing.T) {
	coll := validate(sample.DirectDebit(), validation.DefaultConfig())

	assert.False(t, coll.HasErrors(), "errors: %v", coll.Errors())
}

func TestDirectDebitViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(msg *pacs003.FIToFICustomerDirectDebitV08)
		wantCode int
		wantPath string
	}{
		{
			name: "empty message id",
			mutate: func(msg *pacs003.FIToFICustomerDirectDebitV08) {
				msg.GrpHdr.MsgId = ""
			},
			wantCode: parsererror.CodeMinLength,
			wantPath: "GrpHdr.MsgId",
		},
		{
			name: "end to end id over 35 characters",
			mutate: func(msg *pacs003.FIToFICustomerDirectDebitV08) {
				msg.DrctDbtTxInf.PmtId.EndToEndId = "123456789012345678901234567890123456"
			},
			wantCode: parsererror.CodeMaxLength,
			wantPath: "DrctDbtTxInf.PmtId.EndToEndId",
		},
		{
			name: "malformed UETR",
			mutate: func(msg *pacs003.FIToFICustomerDirectDebitV08) {
				msg.DrctDbtTxInf.PmtId.UETR = str("not-a-uetr")
			},
			wantCode: parsererror.CodePattern,
			wantPath: "DrctDbtTxInf.PmtId.UETR",
		},
		{
			name: "lowercase creditor agent BIC",
			mutate: func(msg *pacs003.FIToFICustomerDirectDebitV08) {
				msg.DrctDbtTxInf.CdtrAgt.FinInstnId.BICFI = str("chasus33")
			},
			wantCode: parsererror.CodePattern,
			wantPath: "DrctDbtTxInf.CdtrAgt.FinInstnId.BICFI",
		},
		{
			name: "malformed debtor IBAN",
			mutate: func(msg *pacs003.FIToFICustomerDirectDebitV08) {
				msg.DrctDbtTxInf.DbtrAcct.Id.IBAN = str("not-an-iban")
			},
			wantCode: parsererror.CodePattern,
			wantPath: "DrctDbtTxInf.DbtrAcct.Id.IBAN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := sample.DirectDebit()
			tt.mutate(msg)

			coll := validate(msg, validation.DefaultConfig())

			require.True(t, coll.HasErrors())
			verr := coll.Errors()[0]
			assert.Equal(t, tt.wantCode, verr.Code)
			assert.Equal(t, tt.wantPath, verr.Path)
		})
	}
}

func TestDirectDebitSampleAgents(t *testing.T) {
	msg := sample.DirectDebit()

	require.NotNil(t, msg.DrctDbtTxInf.InstgAgt.FinInstnId.BICFI)
	assert.Equal(t, "CHASUS33", *msg.DrctDbtTxInf.InstgAgt.FinInstnId.BICFI)
	require.NotNil(t, msg.DrctDbtTxInf.InstdAgt.FinInstnId.BICFI)
	assert.Equal(t, "DEUTDEFF", *msg.DrctDbtTxInf.InstdAgt.FinInstnId.BICFI)
}

func TestDirectDebitInstructingAgentBIC(t *testing.T) {
	msg := sample.DirectDebit()
	msg.DrctDbtTxInf.InstgAgt.FinInstnId.BICFI = str("chasus33")

	coll := validate(msg, validation.DefaultConfig())

	require.True(t, coll.HasErrors())
	verr := coll.Errors()[0]
	assert.Equal(t, parsererror.CodePattern, verr.Code)
	assert.Equal(t, "DrctDbtTxInf.InstgAgt.FinInstnId.BICFI", verr.Path)
}

func TestDirectDebitMandateTrackingDays(t *testing.T) {
	msg := sample.DirectDebit()
	msg.DrctDbtTxInf.DrctDbtTx = &pacs003.DirectDebitTransaction101{
		MndtRltdInf: &pacs003.MandateRelatedInformation141{
			MndtId:    str("MANDATE-001"),
			TrckgDays: str("5"),
		},
	}

	t.Run("two digit pattern enforced", func(t *testing.T) {
		coll := validate(msg, validation.DefaultConfig())
		require.True(t, coll.HasErrors())
		assert.Equal(t, parsererror.CodePattern, coll.Errors()[0].Code)
		assert.Equal(t, "DrctDbtTxInf.DrctDbtTx.MndtRltdInf.TrckgDays", coll.Errors()[0].Path)
	})

	t.Run("lenient config skips the mandate block", func(t *testing.T) {
		coll := validate(msg, validation.LenientConfig())
		assert.False(t, coll.HasErrors())
	})

	t.Run("two digits pass", func(t *testing.T) {
		msg.DrctDbtTxInf.DrctDbtTx.MndtRltdInf.TrckgDays = str("05")
		coll := validate(msg, validation.DefaultConfig())
		assert.False(t, coll.HasErrors(), "errors: %v", coll.Errors())
	})
}

func TestDirectDebitOptionalUETRAbsent(t *testing.T) {
	msg := sample.DirectDebit()
	msg.DrctDbtTxInf.PmtId.UETR = nil

	coll := validate(msg, validation.DefaultConfig())

	assert.False(t, coll.HasErrors())
}
