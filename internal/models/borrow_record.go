package models

import "time"

// BorrowRecord links an item snapshot to a borrower for a time window.
// ItemName is a free-text copy taken at borrow time, not a reference into
// the items table; catalog renames do not rewrite history.
type BorrowRecord struct {
	ID           string    `json:"id"`
	ItemName     string    `json:"item_name"`
	Amount       string    `json:"amount"`
	BorrowDate   string    `json:"borrow_date"`
	ReturnDate   string    `json:"return_date"`
	BorrowerName string    `json:"borrower_name"`
	OfficerName  string    `json:"officer_name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
