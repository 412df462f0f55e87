package head001_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclear/mx-message/internal/models/head001"
	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/sample"
	"openclear/mx-message/internal/validation"
)

func validate(hdr *head001.BusinessApplicationHeaderV02, cfg *validation.ParserConfig) *validation.ErrorCollector {
	coll := validation.NewErrorCollector()
	hdr.Validate("", cfg, coll)
	return coll
}

func header(t *testing.T) *head001.BusinessApplicationHeaderV02 {
	t.Helper()
	hdr, err := sample.AppHeader("pacs.008")
	require.NoError(t, err)
	return &hdr.BusinessApplicationHeaderV02
}

func TestAppHeaderValid(t *testing.T) {
	coll := validate(header(t), validation.DefaultConfig())

	assert.False(t, coll.HasErrors(), "errors: %v", coll.Errors())
}

func TestAppHeaderViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(hdr *head001.BusinessApplicationHeaderV02)
		wantCode int
		wantPath string
	}{
		{
			name: "empty business message identifier",
			mutate: func(hdr *head001.BusinessApplicationHeaderV02) {
				hdr.BizMsgIdr = ""
			},
			wantCode: parsererror.CodeMinLength,
			wantPath: "BizMsgIdr",
		},
		{
			name: "business service too short",
			mutate: func(hdr *head001.BusinessApplicationHeaderV02) {
				hdr.BizSvc = "swift"
			},
			wantCode: parsererror.CodeMinLength,
			wantPath: "BizSvc",
		},
		{
			name: "business service without version suffix",
			mutate: func(hdr *head001.BusinessApplicationHeaderV02) {
				hdr.BizSvc = "swift.cbprplus"
			},
			wantCode: parsererror.CodePattern,
			wantPath: "BizSvc",
		},
		{
			name: "creation date with Z offset",
			mutate: func(hdr *head001.BusinessApplicationHeaderV02) {
				hdr.CreDt = "2024-06-01T10:30:00Z"
			},
			wantCode: parsererror.CodePattern,
			wantPath: "CreDt",
		},
		{
			name: "lowercase sender BIC",
			mutate: func(hdr *head001.BusinessApplicationHeaderV02) {
				hdr.Fr.FIId.FinInstnId.BICFI = "deutdeff"
			},
			wantCode: parsererror.CodePattern,
			wantPath: "Fr.FIId.FinInstnId.BICFI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hdr := header(t)
			tt.mutate(hdr)

			coll := validate(hdr, validation.DefaultConfig())

			require.True(t, coll.HasErrors())
			verr := coll.Errors()[0]
			assert.Equal(t, tt.wantCode, verr.Code)
			assert.Equal(t, tt.wantPath, verr.Path)
		})
	}
}

func TestAppHeaderBusinessService(t *testing.T) {
	valid := []string{"swift.cbprplus.02", "swift.cbprplus.stp.01"}

	for _, bizSvc := range valid {
		hdr := header(t)
		hdr.BizSvc = bizSvc

		coll := validate(hdr, validation.DefaultConfig())

		assert.False(t, coll.HasErrors(), "BizSvc %s: %v", bizSvc, coll.Errors())
	}
}
