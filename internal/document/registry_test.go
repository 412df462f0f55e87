package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedTypes(t *testing.T) {
	types := SupportedTypes()

	require.Len(t, types, 4)
	assert.Equal(t, "pacs.008", types[0].ShortForm)
	assert.Equal(t, "pacs.003", types[1].ShortForm)
	assert.Equal(t, "camt.057", types[2].ShortForm)
	assert.Equal(t, "camt.108", types[3].ShortForm)
}

func TestNamespace(t *testing.T) {
	tests := []struct {
		name        string
		messageType string
		expected    string
	}{
		{
			name:        "short form",
			messageType: "pacs.008",
			expected:    "urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08",
		},
		{
			name:        "full form",
			messageType: "camt.057.001.06",
			expected:    "urn:iso:std:iso:20022:tech:xsd:camt.057.001.06",
		},
		{
			name:        "unknown type is prefixed unchanged",
			messageType: "pain.001",
			expected:    "urn:iso:std:iso:20022:tech:xsd:pain.001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Namespace(tt.messageType))
		})
	}
}

func TestAppHeaderNamespace(t *testing.T) {
	assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:head.001.001.02", AppHeaderNamespace)
}

func TestNormalizeMessageType(t *testing.T) {
	tests := []struct {
		name        string
		messageType string
		expected    string
	}{
		{
			name:        "full form normalized",
			messageType: "pacs.008.001.08",
			expected:    "pacs.008",
		},
		{
			name:        "short form unchanged",
			messageType: "camt.108",
			expected:    "camt.108",
		},
		{
			name:        "unknown type unchanged",
			messageType: "pain.001.001.09",
			expected:    "pain.001.001.09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMessageType(tt.messageType))
		})
	}
}

func TestElementToMessageType(t *testing.T) {
	tests := []struct {
		name     string
		element  string
		expected string
		found    bool
	}{
		{name: "credit transfer", element: "FIToFICstmrCdtTrf", expected: "pacs.008", found: true},
		{name: "direct debit", element: "FIToFICstmrDrctDbt", expected: "pacs.003", found: true},
		{name: "notification to receive", element: "NtfctnToRcv", expected: "camt.057", found: true},
		{name: "cheque cancellation", element: "ChqCxlOrStopReq", expected: "camt.108", found: true},
		{name: "unknown element", element: "CstmrCdtTrfInitn", expected: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ElementToMessageType(tt.element)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMessageTypeToElement(t *testing.T) {
	element, ok := MessageTypeToElement("pacs.003")
	require.True(t, ok)
	assert.Equal(t, "FIToFICstmrDrctDbt", element)

	element, ok = MessageTypeToElement("pacs.003.001.08")
	require.True(t, ok)
	assert.Equal(t, "FIToFICstmrDrctDbt", element)

	_, ok = MessageTypeToElement("head.001")
	assert.False(t, ok)
}

func TestFullForm(t *testing.T) {
	full, ok := FullForm("camt.108")
	require.True(t, ok)
	assert.Equal(t, "camt.108.001.01", full)

	full, ok = FullForm("camt.108.001.01")
	require.True(t, ok)
	assert.Equal(t, "camt.108.001.01", full)

	_, ok = FullForm("setr.004")
	assert.False(t, ok)
}
