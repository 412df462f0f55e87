package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/document"
)

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name        string
		messageType string
		contains    string
	}{
		{
			name:        "credit transfer",
			messageType: "pacs.008",
			contains:    "<FIToFICstmrCdtTrf>",
		},
		{
			name:        "direct debit",
			messageType: "pacs.003",
			contains:    "<FIToFICstmrDrctDbt>",
		},
		{
			name:        "notification to receive",
			messageType: "camt.057",
			contains:    "<NtfctnToRcv>",
		},
		{
			name:        "cheque cancellation",
			messageType: "camt.108",
			contains:    "<ChqCxlOrStopReq>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := render(tt.messageType)
			require.NoError(t, err)

			assert.Contains(t, string(data), tt.contains)
			assert.Contains(t, string(data), document.Namespace(tt.messageType))

			detected, err := document.DetectMessageTypeBytes(data)
			require.NoError(t, err)
			assert.Equal(t, tt.messageType, detected)
		})
	}
}

func TestRenderAppHeader(t *testing.T) {
	data, err := render("head.001")
	require.NoError(t, err)

	assert.Contains(t, string(data), "<AppHdr")
	assert.Contains(t, string(data), document.AppHeaderNamespace)

	detected, err := document.DetectMessageTypeBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "head.001", detected)
}

func TestRenderUnknownType(t *testing.T) {
	_, err := render("pain.001")

	assert.Error(t, err)
}
