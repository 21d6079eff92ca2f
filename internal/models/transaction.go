// Package models provides the data structures used throughout the application.
package models

import (
	"gorm.io/gorm"

	"github.com/relisha1/MoMo-Data-Analysis/internal/dateutils"
	"github.com/relisha1/MoMo-Data-Analysis/internal/parsererror"
)

// Transaction represents one mobile-money transaction extracted from an SMS
// notification. Records are created once during ingest and never updated.
type Transaction struct {
	ID       uint    `gorm:"primaryKey" json:"id" csv:"ID"`
	TxID     *string `gorm:"column:tx_id;uniqueIndex" json:"transaction_id" csv:"TxID"`
	Type     string  `gorm:"not null;index" json:"type" csv:"Type"`
	Amount   int     `gorm:"not null" json:"amount" csv:"Amount"`
	Fee      int     `gorm:"not null" json:"fee" csv:"Fee"`
	Date     string  `gorm:"not null;index" json:"date" csv:"Date"`
	Sender   string  `json:"sender,omitempty" csv:"Sender"`
	Receiver string  `json:"receiver,omitempty" csv:"Receiver"`
	Details  string  `json:"details" csv:"Details"` // original message body, kept verbatim for audit
}

// BeforeSave rejects structurally invalid records at the storage boundary so
// that direct gorm callers get the same guarantee as the ingest pipeline.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	if t.Amount <= 0 {
		return &parsererror.ValidationError{Field: "amount", Reason: "amount must be a positive integer"}
	}
	if t.Type == "" {
		return &parsererror.ValidationError{Field: "type", Reason: "category must not be empty"}
	}
	if !dateutils.IsValidFull(t.Date) {
		return &parsererror.ValidationError{Field: "date", Reason: "date must be formatted as " + dateutils.DateLayoutFull}
	}
	return nil
}

// ExternalID returns the provider-assigned transaction id, or an empty
// string when the source message carried none.
func (t *Transaction) ExternalID() string {
	if t.TxID == nil {
		return ""
	}
	return *t.TxID
}
