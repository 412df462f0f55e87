// Package pacs008 contains the FI to FI customer credit transfer message
// (pacs.008.001.08). FIToFICustomerCreditTransferV08 is the message root;
// the profile restricts it to a single credit transfer transaction.
package pacs008
