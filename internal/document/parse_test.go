package document_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/document"
	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/sample"
)

func TestParseBytesRoundTrip(t *testing.T) {
	messageTypes := []string{"pacs.008", "pacs.003", "camt.057", "camt.108"}

	for _, messageType := range messageTypes {
		t.Run(messageType, func(t *testing.T) {
			doc, err := sample.NewDocument(messageType)
			require.NoError(t, err)

			data, err := document.Marshal(doc)
			require.NoError(t, err)
			assert.Contains(t, string(data), `<?xml version="1.0" encoding="UTF-8"?>`)
			assert.Contains(t, string(data), document.Namespace(messageType))

			parsed, err := document.ParseBytes(data)
			require.NoError(t, err)
			assert.Equal(t, messageType, parsed.MessageType())
			assert.False(t, parsed.Empty())
		})
	}
}

func TestParseBytesPreservesContent(t *testing.T) {
	doc, err := sample.NewDocument("pacs.008")
	require.NoError(t, err)

	data, err := document.Marshal(doc)
	require.NoError(t, err)

	parsed, err := document.ParseBytes(data)
	require.NoError(t, err)
	require.NotNil(t, parsed.FIToFICstmrCdtTrf)
	assert.Equal(t, doc.FIToFICstmrCdtTrf.GrpHdr.MsgId, parsed.FIToFICstmrCdtTrf.GrpHdr.MsgId)
	assert.Equal(t, doc.FIToFICstmrCdtTrf.CdtTrfTxInf.PmtId.UETR, parsed.FIToFICstmrCdtTrf.CdtTrfTxInf.PmtId.UETR)
	assert.Equal(t, "EUR", parsed.FIToFICstmrCdtTrf.CdtTrfTxInf.IntrBkSttlmAmt.Ccy)
	assert.Equal(t, "12500.00", parsed.FIToFICstmrCdtTrf.CdtTrfTxInf.IntrBkSttlmAmt.Value)
}

func TestParseBytesMalformed(t *testing.T) {
	_, err := document.ParseBytes([]byte(`<Document><FIToFICstmrCdtTrf>`))

	var parseErr *parsererror.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseBytesEmptyEnvelope(t *testing.T) {
	_, err := document.ParseBytes([]byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08"></Document>`))

	var unknownErr *parsererror.UnknownMessageTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Document", unknownErr.Element)
}

func TestParseFile(t *testing.T) {
	doc, err := sample.NewDocument("camt.057")
	require.NoError(t, err)
	data, err := document.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "notification.xml")
	require.NoError(t, os.WriteFile(path, data, 0600))

	parsed, err := document.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "camt.057", parsed.MessageType())
}

func TestParseFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xml")

	_, err := document.ParseFile(path)

	var parseErr *parsererror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.File)
}

func TestParseAppHeader(t *testing.T) {
	hdr, err := sample.AppHeader("pacs.008")
	require.NoError(t, err)

	data, err := document.MarshalAppHeader(hdr)
	require.NoError(t, err)

	parsed, err := document.ParseAppHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "pacs.008.001.08", parsed.MsgDefIdr)
	assert.Equal(t, "swift.cbprplus.02", parsed.BizSvc)
	require.NotNil(t, parsed.Fr.FIId)
	assert.Equal(t, "DEUTDEFF", parsed.Fr.FIId.FinInstnId.BICFI)
}
