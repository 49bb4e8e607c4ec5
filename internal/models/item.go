package models

import "time"

// Item is a single loanable catalog entry. Amount is kept as free text,
// matching the inbound payloads ("3", "beberapa", ...).
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	Condition string    `json:"condition"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
