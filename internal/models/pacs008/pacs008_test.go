package pacs008_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/models/pacs008"
	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/sample"
	"openclear/mx-message/internal/validation"
)

func str(s string) *string { return &s }

func validate(msg *pacs008.FIToFICustomerCreditTransferV08, cfg *validation.ParserConfig) *validation.ErrorCollector {
	coll := validation.NewErrorCollector()
	msg.Validate("", cfg, coll)
	return coll
}

func TestCreditTransferValid(t *testing.T) {
	coll := validate(sample.CreditTransfer(), validation.DefaultConfig())

	assert.False(t, coll.HasErrors(), "errors: %v", coll.Errors())
}

func TestCreditTransferViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(msg *pacs008.FIToFICustomerCreditTransferV08)
		wantCode int
		wantPath string
	}{
		{
			name: "empty message id",
			mutate: func(msg *pacs008.FIToFICustomerCreditTransferV08) {
				msg.GrpHdr.MsgId = ""
			},
			wantCode: parsererror.CodeMinLength,
			wantPath: "GrpHdr.MsgId",
		},
		{
			name: "message id over 35 characters",
			mutate: func(msg *pacs008.FIToFICustomerCreditTransferV08) {
				msg.GrpHdr.MsgId = "123456789012345678901234567890123456"
			},
			wantCode: parsererror.CodeMaxLength,
			wantPath: "GrpHdr.MsgId",
		},
		{
			name: "creation time with Z offset",
			mutate: func(msg *pacs008.FIToFICustomerCreditTransferV08) {
				msg.GrpHdr.CreDtTm = "2024-06-01T10:30:00Z"
			},
			wantCode: parsererror.CodePattern,
			wantPath: "GrpHdr.CreDtTm",
		},
		{
			name: "instruction id over 16 characters",
			mutate: func(msg *pacs008.FIToFICustomerCreditTransferV08) {
				msg.CdtTrfTxInf.PmtId.InstrId = "12345678901234567"
			},
			wantCode: parsererror.CodeMaxLength,
			wantPath: "CdtTrfTxInf.PmtId.InstrId",
		},
		{
			name: "malformed UETR",
			mutate: func(msg *pacs008.FIToFICustomerCreditTransferV08) {
				msg.CdtTrfTxInf.PmtId.UETR = "not-a-uetr"
			},
			wantCode: parsererror.CodePattern,
			wantPath: "CdtTrfTxInf.PmtId.UETR",
		},
		{
			name: "lowercase instructing agent BIC",
			mutate: func(msg *pacs008.FIToFICustomerCreditTransferV08) {
				msg.CdtTrfTxInf.InstgAgt.FinInstnId.BICFI = "deutdeff"
			},
			wantCode: parsererror.CodePattern,
			wantPath: "CdtTrfTxInf.InstgAgt.FinInstnId.BICFI",
		},
		{
			name: "malformed LEI on instructed agent",
			mutate: func(msg *pacs008.FIToFICustomerCreditTransferV08) {
				msg.CdtTrfTxInf.InstdAgt.FinInstnId.LEI = str("NOT-A-VALID-LEI")
			},
			wantCode: parsererror.CodePattern,
			wantPath: "CdtTrfTxInf.InstdAgt.FinInstnId.LEI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := sample.CreditTransfer()
			tt.mutate(msg)

			coll := validate(msg, validation.DefaultConfig())

			require.True(t, coll.HasErrors())
			verr := coll.Errors()[0]
			assert.Equal(t, tt.wantCode, verr.Code)
			assert.Equal(t, tt.wantPath, verr.Path)
		})
	}
}

func TestCreditTransferCollectsEveryViolation(t *testing.T) {
	msg := sample.CreditTransfer()
	msg.GrpHdr.MsgId = ""
	msg.CdtTrfTxInf.PmtId.UETR = "bogus"
	msg.CdtTrfTxInf.InstgAgt.FinInstnId.BICFI = "bad"

	coll := validate(msg, validation.DefaultConfig())

	// The empty MsgId fails both the length and the pattern facet.
	assert.Equal(t, 4, coll.Len())
}

func TestCreditTransferOptionalCompositeGating(t *testing.T) {
	msg := sample.CreditTransfer()
	msg.CdtTrfTxInf.UltmtDbtr = &pacs008.PartyIdentification1351{
		CtryOfRes: str("germany"),
	}

	t.Run("default config recurses into optional composites", func(t *testing.T) {
		coll := validate(msg, validation.DefaultConfig())
		require.Equal(t, 1, coll.Len())
		assert.Equal(t, "CdtTrfTxInf.UltmtDbtr.CtryOfRes", coll.Errors()[0].Path)
	})

	t.Run("lenient config skips optional composites", func(t *testing.T) {
		coll := validate(msg, validation.LenientConfig())
		assert.False(t, coll.HasErrors())
	})
}

func TestCreditTransferOptionalScalarAlwaysChecked(t *testing.T) {
	msg := sample.CreditTransfer()
	msg.CdtTrfTxInf.PmtId.TxId = str("")

	coll := validate(msg, validation.LenientConfig())

	require.True(t, coll.HasErrors())
	assert.Equal(t, "CdtTrfTxInf.PmtId.TxId", coll.Errors()[0].Path)
}

func TestCreditTransferRepeatedElementsSharePath(t *testing.T) {
	msg := sample.CreditTransfer()
	msg.CdtTrfTxInf.ChrgsInf = []pacs008.Charges71{
		{Agt: pacs008.BranchAndFinancialInstitutionIdentification61{
			FinInstnId: pacs008.FinancialInstitutionIdentification181{BICFI: str("first")},
		}},
		{Agt: pacs008.BranchAndFinancialInstitutionIdentification61{
			FinInstnId: pacs008.FinancialInstitutionIdentification181{BICFI: str("second")},
		}},
	}

	coll := validate(msg, validation.DefaultConfig())

	require.Equal(t, 2, coll.Len())
	for _, verr := range coll.Errors() {
		assert.Equal(t, "CdtTrfTxInf.ChrgsInf.Agt.FinInstnId.BICFI", verr.Path)
	}
}

func TestCreditTransferEmptyRepetition(t *testing.T) {
	msg := sample.CreditTransfer()
	msg.CdtTrfTxInf.ChrgsInf = []pacs008.Charges71{}
	msg.CdtTrfTxInf.InstrForCdtrAgt = []pacs008.InstructionForCreditorAgent11{}

	coll := validate(msg, validation.DefaultConfig())

	assert.False(t, coll.HasErrors())
}

func TestCreditTransferFailFastMarksCritical(t *testing.T) {
	msg := sample.CreditTransfer()
	msg.CdtTrfTxInf.InstgAgt.FinInstnId.BICFI = "bad"

	coll := validate(msg, validation.FailFastConfig())

	assert.True(t, coll.HasCriticalErrors())
}

func TestAmountDecimal(t *testing.T) {
	amt := pacs008.CBPRAmount1{Ccy: "EUR", Value: "12500.00"}

	value, err := amt.Decimal()

	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(12500)))

	_, err = (&pacs008.CBPRAmount1{Value: "twelve"}).Decimal()
	assert.Error(t, err)
}

func TestEnumConstants(t *testing.T) {
	assert.Equal(t, pacs008.Max15NumericTextfixed("1"), pacs008.Max15NumericTextfixed1)
	assert.Equal(t, pacs008.SettlementMethod1Code1("INDA"), pacs008.SettlementMethod1Code1INDA)
	assert.Equal(t, pacs008.ChargeBearerType1Code1("SHAR"), pacs008.ChargeBearerType1Code1SHAR)
}
