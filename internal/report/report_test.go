package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/document"
	"openclear/mx-message/internal/report"
	"openclear/mx-message/internal/sample"
	"openclear/mx-message/internal/validation"
)

func invalidReport(t *testing.T) *document.ValidationReport {
	t.Helper()
	doc, err := sample.NewDocument("pacs.008")
	require.NoError(t, err)
	doc.FIToFICstmrCdtTrf.CdtTrfTxInf.PmtId.UETR = "bogus"
	return document.ValidateDocument(doc, validation.DefaultConfig())
}

func TestRowsForValidReport(t *testing.T) {
	doc, err := sample.NewDocument("camt.057")
	require.NoError(t, err)
	rep := document.ValidateDocument(doc, validation.DefaultConfig())

	rows := report.Rows(rep)

	require.Len(t, rows, 1)
	assert.Equal(t, "camt.057", rows[0].MessageType)
	assert.Equal(t, "valid", rows[0].Status)
	assert.Empty(t, rows[0].Path)
	assert.Zero(t, rows[0].Code)
}

func TestRowsForInvalidReport(t *testing.T) {
	rep := invalidReport(t)

	rows := report.Rows(rep)

	require.Len(t, rows, len(rep.Errors))
	for i, row := range rows {
		assert.Equal(t, "pacs.008", row.MessageType)
		assert.Equal(t, "invalid", row.Status)
		assert.Equal(t, rep.Errors[i].Path, row.Path)
		assert.Equal(t, rep.Errors[i].Field, row.Field)
		assert.Equal(t, rep.Errors[i].Code, row.Code)
		assert.Equal(t, rep.Errors[i].Message, row.Message)
	}
}

func TestWriteCSV(t *testing.T) {
	rep := invalidReport(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(rep, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(rep.Errors)+1)
	assert.Equal(t, "message_type,status,path,field,code,message", lines[0])
	assert.Contains(t, lines[1], "CdtTrfTxInf.PmtId.UETR")
	assert.Contains(t, lines[1], "1005")
}

func TestWriteCSVFileCreatesDirectory(t *testing.T) {
	rep := invalidReport(t)
	path := filepath.Join(t.TempDir(), "reports", "validation.csv")

	require.NoError(t, report.WriteCSVFile(rep, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "message_type,status,path,field,code,message")
	assert.Contains(t, string(data), "UETR")
}
