// Package camt108 contains the cheque cancellation or stop request message
// (camt.108.001.01). ChequeCancellationOrStopRequestV01 is the message root.
package camt108
