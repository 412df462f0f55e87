// Package camt057 contains the notification to receive message
// (camt.057.001.06). NotificationToReceiveV06 is the message root.
package camt057
