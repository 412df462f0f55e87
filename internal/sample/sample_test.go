package sample_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/document"
	"openclear/mx-message/internal/sample"
	"openclear/mx-message/internal/validation"
)

func TestNewDocumentValidatesClean(t *testing.T) {
	tests := []struct {
		name        string
		messageType string
		expected    string
	}{
		{name: "pacs.008 short form", messageType: "pacs.008", expected: "pacs.008"},
		{name: "pacs.008 full form", messageType: "pacs.008.001.08", expected: "pacs.008"},
		{name: "pacs.003", messageType: "pacs.003", expected: "pacs.003"},
		{name: "camt.057", messageType: "camt.057", expected: "camt.057"},
		{name: "camt.108", messageType: "camt.108", expected: "camt.108"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := sample.NewDocument(tt.messageType)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, doc.MessageType())
			assert.Equal(t, document.Namespace(tt.messageType), doc.Namespace)

			rep := document.ValidateDocument(doc, validation.DefaultConfig())
			assert.Equal(t, document.StatusValid, rep.Status, "errors: %v", rep.Errors)
		})
	}
}

func TestNewDocumentUnknownType(t *testing.T) {
	_, err := sample.NewDocument("pain.001")

	assert.Error(t, err)
}

func TestCreditTransferUETRIsRandom(t *testing.T) {
	first := sample.CreditTransfer()
	second := sample.CreditTransfer()

	assert.NotEqual(t, first.CdtTrfTxInf.PmtId.UETR, second.CdtTrfTxInf.PmtId.UETR)

	parsed, err := uuid.Parse(first.CdtTrfTxInf.PmtId.UETR)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestAppHeaderMatchesMessageType(t *testing.T) {
	hdr, err := sample.AppHeader("camt.108")
	require.NoError(t, err)

	assert.Equal(t, "camt.108.001.01", hdr.MsgDefIdr)
	assert.Equal(t, document.AppHeaderNamespace, hdr.Namespace)

	rep := document.ValidateAppHeader(hdr, validation.DefaultConfig())
	assert.Equal(t, document.StatusValid, rep.Status, "errors: %v", rep.Errors)
}

func TestAppHeaderUnknownType(t *testing.T) {
	_, err := sample.AppHeader("head.001")

	assert.Error(t, err)
}

func TestAmountsCarryTwoDecimals(t *testing.T) {
	ct := sample.CreditTransfer()
	assert.Equal(t, "12500.00", ct.CdtTrfTxInf.IntrBkSttlmAmt.Value)

	value, err := ct.CdtTrfTxInf.IntrBkSttlmAmt.Decimal()
	require.NoError(t, err)
	assert.Equal(t, "12500", value.String())
}
