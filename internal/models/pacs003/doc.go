// Package pacs003 contains the FI to FI customer direct debit message
// (pacs.003.001.08). FIToFICustomerDirectDebitV08 is the message root.
package pacs003
