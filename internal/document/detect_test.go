package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/parsererror"
)

func TestDetectMessageTypeBytes(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		expected string
	}{
		{
			name:     "pacs.008 inside Document envelope",
			xml:      `<?xml version="1.0"?><Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08"><FIToFICstmrCdtTrf></FIToFICstmrCdtTrf></Document>`,
			expected: "pacs.008",
		},
		{
			name:     "pacs.003 inside Document envelope",
			xml:      `<Document><FIToFICstmrDrctDbt></FIToFICstmrDrctDbt></Document>`,
			expected: "pacs.003",
		},
		{
			name:     "camt.057 inside Document envelope",
			xml:      `<Document><NtfctnToRcv></NtfctnToRcv></Document>`,
			expected: "camt.057",
		},
		{
			name:     "camt.108 inside Document envelope",
			xml:      `<Document><ChqCxlOrStopReq></ChqCxlOrStopReq></Document>`,
			expected: "camt.108",
		},
		{
			name:     "bare message root without envelope",
			xml:      `<FIToFICstmrCdtTrf><GrpHdr></GrpHdr></FIToFICstmrCdtTrf>`,
			expected: "pacs.008",
		},
		{
			name:     "standalone application header",
			xml:      `<AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02"><BizMsgIdr>X</BizMsgIdr></AppHdr>`,
			expected: "head.001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectMessageTypeBytes([]byte(tt.xml))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectMessageTypeUnknownRoot(t *testing.T) {
	_, err := DetectMessageTypeBytes([]byte(`<Envelope><Body></Body></Envelope>`))

	var unknownErr *parsererror.UnknownMessageTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Envelope", unknownErr.Element)
}

func TestDetectMessageTypeMalformedXML(t *testing.T) {
	_, err := DetectMessageTypeBytes([]byte(`<Document><FIToFICstmrCdtTrf>`))

	var parseErr *parsererror.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDetectMessageTypeReader(t *testing.T) {
	got, err := DetectMessageType(strings.NewReader(`<Document><NtfctnToRcv></NtfctnToRcv></Document>`))

	require.NoError(t, err)
	assert.Equal(t, "camt.057", got)
}

func TestDetectMessageTypeFileMissing(t *testing.T) {
	_, err := DetectMessageTypeFile("testdata/does-not-exist.xml")

	var parseErr *parsererror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "testdata/does-not-exist.xml", parseErr.File)
}
