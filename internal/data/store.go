// Package data provides read-only access to customer data: load
// curves, directory records and contracts. The engine treats these as
// external collaborators behind small interfaces so the backing store
// can change without touching the analysis code.
package data

import "energy-advisor/internal/model"

// LoadCurveStore is the engine's only suspension point. A lookup
// either fully succeeds or fails; there is no partial read. Unknown
// identifiers yield model.ErrUnknownCustomer.
type LoadCurveStore interface {
	LoadCurve(customerID string) (*model.LoadCurve, error)
}

// CustomerDirectory resolves customer ids to directory records.
type CustomerDirectory interface {
	Customer(customerID string) (model.Customer, error)
}

// ContractStore resolves a customer's current contract. A customer
// with no contract yields ok=false, which is not an error: offer
// matching still runs, just without an already-optimal comparison.
type ContractStore interface {
	Contract(customerID string) (model.Contract, bool, error)
}
