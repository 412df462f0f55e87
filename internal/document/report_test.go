package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/document"
	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/sample"
	"openclear/mx-message/internal/validation"
)

func TestValidateDocumentValidSamples(t *testing.T) {
	messageTypes := []string{"pacs.008", "pacs.003", "camt.057", "camt.108"}

	for _, messageType := range messageTypes {
		t.Run(messageType, func(t *testing.T) {
			doc, err := sample.NewDocument(messageType)
			require.NoError(t, err)

			rep := document.ValidateDocument(doc, validation.DefaultConfig())

			assert.Equal(t, messageType, rep.MessageType)
			assert.Equal(t, document.StatusValid, rep.Status)
			assert.Empty(t, rep.Errors)
		})
	}
}

func TestValidateDocumentInvalid(t *testing.T) {
	doc, err := sample.NewDocument("pacs.008")
	require.NoError(t, err)
	doc.FIToFICstmrCdtTrf.GrpHdr.MsgId = ""

	rep := document.ValidateDocument(doc, validation.DefaultConfig())

	assert.Equal(t, document.StatusInvalid, rep.Status)
	require.NotEmpty(t, rep.Errors)
	assert.Equal(t, parsererror.CodeMinLength, rep.Errors[0].Code)
	assert.Equal(t, "FIToFICstmrCdtTrf.GrpHdr.MsgId", rep.Errors[0].Path)
}

func TestValidateDocumentCriticalUnderFailFast(t *testing.T) {
	doc, err := sample.NewDocument("pacs.003")
	require.NoError(t, err)
	doc.FIToFICstmrDrctDbt.GrpHdr.MsgId = ""

	rep := document.ValidateDocument(doc, validation.FailFastConfig())

	assert.Equal(t, document.StatusCritical, rep.Status)
	require.NotEmpty(t, rep.Errors)
	assert.Equal(t, parsererror.CodeMinLength, rep.Errors[0].Code)
}

func TestValidateDocumentIdempotent(t *testing.T) {
	doc, err := sample.NewDocument("camt.108")
	require.NoError(t, err)
	doc.ChqCxlOrStopReq.GrpHdr.MsgId = "THIS-MESSAGE-ID-IS-FAR-TOO-LONG-FOR-THE-SCHEMA"

	first := document.ValidateDocument(doc, validation.DefaultConfig())
	second := document.ValidateDocument(doc, validation.DefaultConfig())

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Errors, second.Errors)
}

func TestValidateAppHeader(t *testing.T) {
	hdr, err := sample.AppHeader("camt.057")
	require.NoError(t, err)

	rep := document.ValidateAppHeader(hdr, validation.DefaultConfig())

	assert.Equal(t, "head.001", rep.MessageType)
	assert.Equal(t, document.StatusValid, rep.Status)
	assert.Empty(t, rep.Errors)
}

func TestValidateAppHeaderInvalidBIC(t *testing.T) {
	hdr, err := sample.AppHeader("pacs.008")
	require.NoError(t, err)
	hdr.Fr.FIId.FinInstnId.BICFI = "not-a-bic"

	rep := document.ValidateAppHeader(hdr, validation.DefaultConfig())

	assert.Equal(t, document.StatusInvalid, rep.Status)
	require.NotEmpty(t, rep.Errors)
	assert.Equal(t, parsererror.CodePattern, rep.Errors[0].Code)
	assert.Equal(t, "Fr.FIId.FinInstnId.BICFI", rep.Errors[0].Path)
}

func TestDocumentMessageType(t *testing.T) {
	var doc document.Document
	assert.Equal(t, "", doc.MessageType())
	assert.True(t, doc.Empty())

	withBody, err := sample.NewDocument("camt.057")
	require.NoError(t, err)
	assert.Equal(t, "camt.057", withBody.MessageType())
	assert.False(t, withBody.Empty())
}
