package model

import "time"

// Customer is directory information about an account holder.
// Externally supplied, read-only to the engine.
type Customer struct {
	ID       string `yaml:"id" json:"customer_id"`
	Name     string `yaml:"name" json:"name"`
	Address  string `yaml:"address" json:"address"`
	Email    string `yaml:"email" json:"email"`
	AreaCode string `yaml:"area_code" json:"area_code"`
	District string `yaml:"district" json:"district"`
}

// Contract links a customer to their current offer. Owned and mutated
// outside the engine; the engine only reads it.
type Contract struct {
	CustomerID     string    `yaml:"customer_id" json:"customer_id"`
	OfferID        string    `yaml:"offer_id" json:"offer_id"`
	StartDate      time.Time `yaml:"start_date" json:"start_date"`
	PriceEURPerKWh float64   `yaml:"price_eur_kwh" json:"price_eur_kwh"`
}
