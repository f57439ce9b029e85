package domain

import "time"

// User represents a customer account
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Gender         string    `json:"gender"`
	Email          string    `json:"email"`
	LastLoggedInAt time.Time `json:"lastLoggedInAt"`
	IsAdmin        bool      `json:"isAdmin"`
	Addresses      []Address `json:"addresses"`
	Favourites     []string  `json:"favourites"`
}

// Address is a shipping address attached to a user
type Address struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Zipcode     string `json:"zipcode"`
}

// Complete reports whether every required address field is set
func (a *Address) Complete() bool {
	return a.AddressLine != "" && a.City != "" && a.State != "" &&
		a.Country != "" && a.Zipcode != ""
}
