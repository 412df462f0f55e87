package xmlutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">
    <FIToFICstmrCdtTrf>
        <GrpHdr>
            <MsgId>MSG-001</MsgId>
            <CreDtTm>2024-06-01T10:30:00+00:00</CreDtTm>
        </GrpHdr>
    </FIToFICstmrCdtTrf>
</Document>`

func TestLoadXML(t *testing.T) {
	root, err := LoadXML(strings.NewReader(sampleXML))

	require.NoError(t, err)
	assert.NotNil(t, root)
}

func TestLoadXMLMalformed(t *testing.T) {
	_, err := LoadXML(strings.NewReader("<Document><Unclosed>"))

	assert.Error(t, err)
}

func TestLoadXMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleXML), 0600))

	root, err := LoadXMLFile(path)

	require.NoError(t, err)
	assert.NotNil(t, root)
}

func TestLoadXMLFileMissing(t *testing.T) {
	_, err := LoadXMLFile(filepath.Join(t.TempDir(), "missing.xml"))

	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	root, err := LoadXML(strings.NewReader(sampleXML))
	require.NoError(t, err)

	tests := []struct {
		name     string
		xpath    string
		expected bool
	}{
		{
			name:     "root element",
			xpath:    "/Document",
			expected: true,
		},
		{
			name:     "namespaced child matched by local name",
			xpath:    "/Document/FIToFICstmrCdtTrf",
			expected: true,
		},
		{
			name:     "deep path",
			xpath:    "/Document/FIToFICstmrCdtTrf/GrpHdr/MsgId",
			expected: true,
		},
		{
			name:     "absent element",
			xpath:    "/Document/FIToFICstmrDrctDbt",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Exists(root, tt.xpath)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestExistsInvalidXPath(t *testing.T) {
	root, err := LoadXML(strings.NewReader(sampleXML))
	require.NoError(t, err)

	_, err = Exists(root, "///")

	assert.Error(t, err)
}

func TestExtractFromXML(t *testing.T) {
	root, err := LoadXML(strings.NewReader(sampleXML))
	require.NoError(t, err)

	values, err := ExtractFromXML(root, "/Document/FIToFICstmrCdtTrf/GrpHdr/MsgId")

	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "MSG-001", values[0])
}

func TestExtractFromXMLNoMatch(t *testing.T) {
	root, err := LoadXML(strings.NewReader(sampleXML))
	require.NoError(t, err)

	values, err := ExtractFromXML(root, "/Document/Missing")

	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestGetOrEmpty(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		index    int
		expected string
	}{
		{
			name:     "valid index returns value",
			slice:    []string{"a", "b", "c"},
			index:    1,
			expected: "b",
		},
		{
			name:     "index out of bounds returns empty",
			slice:    []string{"a"},
			index:    3,
			expected: "",
		},
		{
			name:     "nil slice returns empty",
			slice:    nil,
			index:    0,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetOrEmpty(tt.slice, tt.index))
		})
	}
}
