package data

import (
	"fmt"
	"os"
	"time"

	"energy-advisor/internal/model"

	"gopkg.in/yaml.v3"
)

// Directory is an in-memory customer and contract registry, loaded
// once from YAML (or seeded with built-in records for local runs).
// Read-only after construction.
type Directory struct {
	customers map[string]model.Customer
	contracts map[string]model.Contract
}

type directoryFile struct {
	Customers []model.Customer `yaml:"customers"`
	Contracts []model.Contract `yaml:"contracts"`
}

// LoadDirectory reads customers and contracts from a YAML file.
func LoadDirectory(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	var f directoryFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse directory %s: %w", path, err)
	}
	return NewDirectory(f.Customers, f.Contracts), nil
}

// NewDirectory builds a registry from explicit records.
func NewDirectory(customers []model.Customer, contracts []model.Contract) *Directory {
	d := &Directory{
		customers: make(map[string]model.Customer, len(customers)),
		contracts: make(map[string]model.Contract, len(contracts)),
	}
	for _, c := range customers {
		d.customers[c.ID] = c
	}
	for _, c := range contracts {
		d.contracts[c.CustomerID] = c
	}
	return d
}

func (d *Directory) Customer(customerID string) (model.Customer, error) {
	c, ok := d.customers[customerID]
	if !ok {
		return model.Customer{}, fmt.Errorf("%w: %s", model.ErrUnknownCustomer, customerID)
	}
	return c, nil
}

func (d *Directory) Contract(customerID string) (model.Contract, bool, error) {
	if _, ok := d.customers[customerID]; !ok {
		return model.Contract{}, false, fmt.Errorf("%w: %s", model.ErrUnknownCustomer, customerID)
	}
	c, ok := d.contracts[customerID]
	return c, ok, nil
}

// DefaultDirectory seeds a small registry for local runs and demos.
func DefaultDirectory() *Directory {
	return NewDirectory(
		[]model.Customer{
			{ID: "00001", Name: "Jean Dupont", Address: "12 Rue de la Gare, Luxembourg", Email: "jean.dupont@email.lu", AreaCode: "LU-1", District: "Gare"},
			{ID: "00002", Name: "Marie Schmidt", Address: "45 Avenue de la Liberté, Esch-sur-Alzette", Email: "marie.schmidt@email.lu", AreaCode: "LU-2", District: "Esch"},
			{ID: "00003", Name: "Pierre Martin", Address: "8 Boulevard Royal, Luxembourg", Email: "pierre.martin@email.lu", AreaCode: "LU-1", District: "Ville Haute"},
		},
		[]model.Contract{
			{CustomerID: "00001", OfferID: "naturstrom-fix", StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), PriceEURPerKWh: 0.25},
			{CustomerID: "00002", OfferID: "nova-naturstroum", StartDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), PriceEURPerKWh: 0.23},
			{CustomerID: "00003", OfferID: "naturstrom-fix", StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), PriceEURPerKWh: 0.25},
		},
	)
}
