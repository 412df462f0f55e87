package camt057_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/models/camt057"
	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/sample"
	"openclear/mx-message/internal/validation"
)

func str(s string) *string { return &s }

func validate(msg *camt057.NotificationToReceiveV06, cfg *validation.ParserConfig) *validation.ErrorCollector {
	coll := validation.NewErrorCollector()
	msg.Validate("", cfg, coll)
	return coll
}

func TestNotificationValid(t *testing.T) {
	coll := validate(sample.NotificationToReceive(), validation.DefaultConfig())

	assert.False(t, coll.HasErrors(), "errors: %v", coll.Errors())
}

func TestNotificationViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(msg *camt057.NotificationToReceiveV06)
		wantCode int
		wantPath string
	}{
		{
			name: "empty group header message id",
			mutate: func(msg *camt057.NotificationToReceiveV06) {
				msg.GrpHdr.MsgId = ""
			},
			wantCode: parsererror.CodeMinLength,
			wantPath: "GrpHdr.MsgId",
		},
		{
			name: "notification id over 35 characters",
			mutate: func(msg *camt057.NotificationToReceiveV06) {
				msg.Ntfctn.Id = "123456789012345678901234567890123456"
			},
			wantCode: parsererror.CodeMaxLength,
			wantPath: "Ntfctn.Id",
		},
		{
			name: "malformed item UETR",
			mutate: func(msg *camt057.NotificationToReceiveV06) {
				msg.Ntfctn.Itm[0].UETR = str("bogus")
			},
			wantCode: parsererror.CodePattern,
			wantPath: "Ntfctn.Itm.UETR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := sample.NotificationToReceive()
			tt.mutate(msg)

			coll := validate(msg, validation.DefaultConfig())

			require.True(t, coll.HasErrors())
			verr := coll.Errors()[0]
			assert.Equal(t, tt.wantCode, verr.Code)
			assert.Equal(t, tt.wantPath, verr.Path)
		})
	}
}

func TestNotificationItemsAlwaysValidated(t *testing.T) {
	// Itm is a mandatory repetition, so the items are walked even when
	// optional field validation is off.
	msg := sample.NotificationToReceive()
	msg.Ntfctn.Itm[0].Id = ""

	coll := validate(msg, validation.LenientConfig())

	require.True(t, coll.HasErrors())
	assert.Equal(t, "Ntfctn.Itm.Id", coll.Errors()[0].Path)
}

func TestNotificationMultipleItemsSharePath(t *testing.T) {
	msg := sample.NotificationToReceive()
	second := msg.Ntfctn.Itm[0]
	second.Id = ""
	msg.Ntfctn.Itm = append(msg.Ntfctn.Itm, second)

	coll := validate(msg, validation.DefaultConfig())

	require.True(t, coll.HasErrors())
	for _, verr := range coll.Errors() {
		assert.Equal(t, "Ntfctn.Itm.Id", verr.Path)
	}
}
