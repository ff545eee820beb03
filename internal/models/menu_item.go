package models

import "strconv"

// MenuItem represents a dish offered on a restaurant menu
// Price is in whole currency units
type MenuItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// String renders the item as name:price
func (m MenuItem) String() string {
	return m.Name + ":" + strconv.Itoa(m.Price)
}
