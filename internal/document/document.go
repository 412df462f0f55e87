// Package document ties the generated message packages together: the
// Document envelope choice, the Business Application Header wrapper, type
// detection, parsing and validation reporting.
package document

import (
	"encoding/xml"

	"openclear/mx-message/internal/models/camt057"
	"openclear/mx-message/internal/models/camt108"
	"openclear/mx-message/internal/models/head001"
	"openclear/mx-message/internal/models/pacs003"
	"openclear/mx-message/internal/models/pacs008"
	"openclear/mx-message/internal/validation"
)

// Document is the ISO 20022 Document envelope: a choice over the supported
// message bodies. Exactly one branch is expected to be set, but validation
// stays permissive and simply walks every branch that is present.
type Document struct {
	XMLName   xml.Name `xml:"Document"`
	Namespace string   `xml:"xmlns,attr,omitempty"`

	FIToFICstmrCdtTrf  *pacs008.FIToFICustomerCreditTransferV08    `xml:"FIToFICstmrCdtTrf,omitempty"`
	FIToFICstmrDrctDbt *pacs003.FIToFICustomerDirectDebitV08       `xml:"FIToFICstmrDrctDbt,omitempty"`
	NtfctnToRcv        *camt057.NotificationToReceiveV06           `xml:"NtfctnToRcv,omitempty"`
	ChqCxlOrStopReq    *camt108.ChequeCancellationOrStopRequestV01 `xml:"ChqCxlOrStopReq,omitempty"`
}

// Validate walks whichever message bodies are present.
func (d *Document) Validate(path string, cfg *validation.ParserConfig, coll *validation.ErrorCollector) {
	if d.FIToFICstmrCdtTrf != nil {
		d.FIToFICstmrCdtTrf.Validate(validation.ChildPath(path, "FIToFICstmrCdtTrf"), cfg, coll)
	}
	if d.FIToFICstmrDrctDbt != nil {
		d.FIToFICstmrDrctDbt.Validate(validation.ChildPath(path, "FIToFICstmrDrctDbt"), cfg, coll)
	}
	if d.NtfctnToRcv != nil {
		d.NtfctnToRcv.Validate(validation.ChildPath(path, "NtfctnToRcv"), cfg, coll)
	}
	if d.ChqCxlOrStopReq != nil {
		d.ChqCxlOrStopReq.Validate(validation.ChildPath(path, "ChqCxlOrStopReq"), cfg, coll)
	}
}

// MessageType returns the short form of the message the document carries,
// or "" when no branch is set.
func (d *Document) MessageType() string {
	switch {
	case d.FIToFICstmrCdtTrf != nil:
		return "pacs.008"
	case d.FIToFICstmrDrctDbt != nil:
		return "pacs.003"
	case d.NtfctnToRcv != nil:
		return "camt.057"
	case d.ChqCxlOrStopReq != nil:
		return "camt.108"
	}
	return ""
}

// Empty reports whether no message body is set.
func (d *Document) Empty() bool {
	return d.MessageType() == ""
}

// AppHeader is the Business Application Header wrapper around the generated
// head.001 type set.
type AppHeader struct {
	XMLName   xml.Name `xml:"AppHdr"`
	Namespace string   `xml:"xmlns,attr,omitempty"`

	head001.BusinessApplicationHeaderV02
}
