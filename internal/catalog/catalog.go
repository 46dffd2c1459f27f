// Package catalog loads the static offer, challenge and producer
// catalogs. A catalog is read once at process start and shared
// read-only by every call; there is no mutation path.
package catalog

import (
	"fmt"
	"os"

	"energy-advisor/internal/model"

	"gopkg.in/yaml.v3"
)

// Catalog bundles the three static datasets the engine matches against.
type Catalog struct {
	Offers     []model.Offer
	Challenges []model.Challenge
	Producers  []model.Producer
}

type catalogFile struct {
	Offers     []model.Offer     `yaml:"offers"`
	Challenges []model.Challenge `yaml:"challenges"`
	Producers  []model.Producer  `yaml:"producers"`
}

// Load reads a catalog YAML. Failures wrap model.ErrCatalogUnavailable:
// a missing or malformed catalog is fatal to the calls that need it and
// is never retried at runtime.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", model.ErrCatalogUnavailable, path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", model.ErrCatalogUnavailable, path, err)
	}
	c := &Catalog{Offers: f.Offers, Challenges: f.Challenges, Producers: f.Producers}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCatalogUnavailable, err)
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.Offers) == 0 {
		return fmt.Errorf("catalog has no offers")
	}
	seen := map[string]bool{}
	for _, o := range c.Offers {
		if o.ID == "" {
			return fmt.Errorf("offer %q has no id", o.Name)
		}
		if seen[o.ID] {
			return fmt.Errorf("duplicate offer id %q", o.ID)
		}
		seen[o.ID] = true
	}
	for _, ch := range c.Challenges {
		if ch.ID == "" {
			return fmt.Errorf("challenge %q has no id", ch.Name)
		}
	}
	for _, p := range c.Producers {
		if p.ID == "" || p.AreaCode == "" {
			return fmt.Errorf("producer %q missing id or area code", p.ID)
		}
	}
	return nil
}

// OfferByID returns the offer with the given id, if present.
func (c *Catalog) OfferByID(id string) (model.Offer, bool) {
	for _, o := range c.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return model.Offer{}, false
}
