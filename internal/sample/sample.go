// Package sample builds minimal valid instances of the supported messages.
// The builders are used by the sample CLI command and double as test
// fixtures: every message they produce passes validation with the default
// configuration.
package sample

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"openclear/mx-message/internal/document"
	"openclear/mx-message/internal/models/camt057"
	"openclear/mx-message/internal/models/camt108"
	"openclear/mx-message/internal/models/head001"
	"openclear/mx-message/internal/models/pacs003"
	"openclear/mx-message/internal/models/pacs008"
)

// Timestamp layout required by the profile: local time with a numeric
// UTC offset. "Z" suffixed timestamps do not pass the schema pattern.
const (
	dateTimeLayout = "2006-01-02T15:04:05-07:00"
	dateLayout     = "2006-01-02"
)

func str(s string) *string { return &s }

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// NewDocument builds a sample document of the given message type (short or
// full form).
func NewDocument(messageType string) (*document.Document, error) {
	doc := &document.Document{}
	switch document.NormalizeMessageType(messageType) {
	case "pacs.008":
		doc.FIToFICstmrCdtTrf = CreditTransfer()
	case "pacs.003":
		doc.FIToFICstmrDrctDbt = DirectDebit()
	case "camt.057":
		doc.NtfctnToRcv = NotificationToReceive()
	case "camt.108":
		doc.ChqCxlOrStopReq = ChequeCancellation()
	default:
		return nil, fmt.Errorf("no sample available for message type %q", messageType)
	}
	doc.Namespace = document.Namespace(messageType)
	return doc, nil
}

// CreditTransfer builds a minimal valid pacs.008 credit transfer.
func CreditTransfer() *pacs008.FIToFICustomerCreditTransferV08 {
	ts := now()
	amount := decimal.NewFromInt(12500)

	return &pacs008.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs008.GroupHeader931{
			MsgId:   "SAMPLE-P008-001",
			CreDtTm: ts.Format(dateTimeLayout),
			NbOfTxs: pacs008.Max15NumericTextfixed1,
			SttlmInf: pacs008.SettlementInstruction71{
				SttlmMtd: pacs008.SettlementMethod1Code1INDA,
			},
		},
		CdtTrfTxInf: pacs008.CreditTransferTransaction391{
			PmtId: pacs008.PaymentIdentification71{
				InstrId:    "INSTR-001",
				EndToEndId: "E2E-REF-001",
				UETR:       uuid.New().String(),
			},
			IntrBkSttlmAmt: pacs008.CBPRAmount1{Ccy: "EUR", Value: amount.StringFixed(2)},
			IntrBkSttlmDt:  ts.Format(dateLayout),
			ChrgBr:         pacs008.ChargeBearerType1Code1SHAR,
			InstgAgt: pacs008.BranchAndFinancialInstitutionIdentification62{
				FinInstnId: pacs008.FinancialInstitutionIdentification182{BICFI: "DEUTDEFF"},
			},
			InstdAgt: pacs008.BranchAndFinancialInstitutionIdentification62{
				FinInstnId: pacs008.FinancialInstitutionIdentification182{BICFI: "CHASUS33"},
			},
			Dbtr: pacs008.PartyIdentification1352{
				Nm: str("Muster GmbH"),
			},
			DbtrAgt: pacs008.BranchAndFinancialInstitutionIdentification61{
				FinInstnId: pacs008.FinancialInstitutionIdentification181{BICFI: str("DEUTDEFF")},
			},
			CdtrAgt: pacs008.BranchAndFinancialInstitutionIdentification63{
				FinInstnId: pacs008.FinancialInstitutionIdentification181{BICFI: str("CHASUS33")},
			},
			Cdtr: pacs008.PartyIdentification1353{
				Nm: str("Acme Corp"),
			},
		},
	}
}

// DirectDebit builds a minimal valid pacs.003 direct debit.
func DirectDebit() *pacs003.FIToFICustomerDirectDebitV08 {
	ts := now()
	amount := decimal.NewFromInt(480)

	return &pacs003.FIToFICustomerDirectDebitV08{
		GrpHdr: pacs003.GroupHeader941{
			MsgId:   "SAMPLE-P003-001",
			CreDtTm: ts.Format(dateTimeLayout),
			NbOfTxs: pacs003.Max15NumericTextfixed1,
			SttlmInf: pacs003.SettlementInstruction81{
				SttlmMtd: pacs003.SettlementMethod2Code1INDA,
			},
		},
		DrctDbtTxInf: pacs003.DirectDebitTransactionInformation241{
			PmtId: pacs003.PaymentIdentification71{
				InstrId:    "INSTR-001",
				EndToEndId: "E2E-REF-001",
				UETR:       str(uuid.New().String()),
			},
			IntrBkSttlmAmt: pacs003.CBPRAmount{Ccy: "EUR", Value: amount.StringFixed(2)},
			IntrBkSttlmDt:  ts.Format(dateLayout),
			ChrgBr:         pacs003.ChargeBearerType1Code1SHAR,
			ReqdColltnDt:   ts.Format(dateLayout),
			Cdtr: pacs003.PartyIdentification1351{
				Nm: str("Acme Corp"),
			},
			CdtrAgt: pacs003.BranchAndFinancialInstitutionIdentification61{
				FinInstnId: pacs003.FinancialInstitutionIdentification181{BICFI: str("CHASUS33")},
			},
			InstgAgt: pacs003.BranchAndFinancialInstitutionIdentification62{
				FinInstnId: pacs003.FinancialInstitutionIdentification182{BICFI: str("CHASUS33")},
			},
			InstdAgt: pacs003.BranchAndFinancialInstitutionIdentification62{
				FinInstnId: pacs003.FinancialInstitutionIdentification182{BICFI: str("DEUTDEFF")},
			},
			Dbtr: pacs003.PartyIdentification1354{
				Nm: str("Muster GmbH"),
			},
			DbtrAcct: pacs003.CashAccount382{
				Id: pacs003.AccountIdentification4Choice2{
					IBAN: str("DE44500105175407324931"),
				},
			},
			DbtrAgt: pacs003.BranchAndFinancialInstitutionIdentification61{
				FinInstnId: pacs003.FinancialInstitutionIdentification181{BICFI: str("DEUTDEFF")},
			},
		},
	}
}

// NotificationToReceive builds a minimal valid camt.057 notification.
func NotificationToReceive() *camt057.NotificationToReceiveV06 {
	ts := now()
	amount := decimal.NewFromInt(250000)

	return &camt057.NotificationToReceiveV06{
		GrpHdr: camt057.GroupHeader771{
			MsgId:   "SAMPLE-C057-001",
			CreDtTm: ts.Format(dateTimeLayout),
		},
		Ntfctn: camt057.AccountNotification161{
			Id: "NOTIF-001",
			Itm: []camt057.NotificationItem71{
				{
					Id:   "ITEM-001",
					UETR: str(uuid.New().String()),
					Amt:  camt057.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: amount.StringFixed(2)},
				},
			},
		},
	}
}

// ChequeCancellation builds a minimal valid camt.108 cheque cancellation
// request.
func ChequeCancellation() *camt108.ChequeCancellationOrStopRequestV01 {
	ts := now()
	amount := decimal.NewFromInt(780)
	reason := camt108.CBPRChequeCancellationReasonCodeDUPL

	return &camt108.ChequeCancellationOrStopRequestV01{
		GrpHdr: camt108.GroupHeader1031{
			MsgId:    "SAMPLE-C108-001",
			CreDtTm:  ts.Format(dateTimeLayout),
			NbOfChqs: camt108.Max15NumericTextfixed1,
		},
		Chq: camt108.Cheque151{
			OrgnlInstrId: "ORIG-INSTR-001",
			ChqNb:        "CHQ-0001",
			IsseDt:       ts.Format(dateLayout),
			Amt:          camt108.CBPRAmount{Ccy: "CHF", Value: amount.StringFixed(2)},
			ChqCxlOrStopRsn: camt108.ChequeCancellationReason11{
				Rsn: camt108.ChequeCancellationReason1Choice1{
					Cd: &reason,
				},
			},
		},
	}
}

// AppHeader builds a Business Application Header for the given message type.
func AppHeader(messageType string) (*document.AppHeader, error) {
	fullForm, ok := document.FullForm(messageType)
	if !ok {
		return nil, fmt.Errorf("unknown message type %q", messageType)
	}

	ts := now()
	return &document.AppHeader{
		Namespace: document.AppHeaderNamespace,
		BusinessApplicationHeaderV02: head001.BusinessApplicationHeaderV02{
			Fr: head001.Party44Choice1{
				FIId: &head001.BranchAndFinancialInstitutionIdentification62{
					FinInstnId: head001.FinancialInstitutionIdentification182{BICFI: "DEUTDEFF"},
				},
			},
			To: head001.Party44Choice1{
				FIId: &head001.BranchAndFinancialInstitutionIdentification62{
					FinInstnId: head001.FinancialInstitutionIdentification182{BICFI: "CHASUS33"},
				},
			},
			BizMsgIdr: "SAMPLE-BIZMSG-001",
			MsgDefIdr: fullForm,
			BizSvc:    "swift.cbprplus.02",
			CreDt:     ts.Format(dateTimeLayout),
		},
	}, nil
}
