// Package head001 contains the Business Application Header
// (head.001.001.02) type set. BusinessApplicationHeaderV02 is the root
// AppHdr element that frames every MX business message.
package head001
