package models

import "time"

// Order represents a priced order placed against the menu
type Order struct {
	ID       string     `json:"id"`
	Items    []MenuItem `json:"items"`
	Total    int        `json:"total"`
	PlacedAt time.Time  `json:"placedAt"`
}
