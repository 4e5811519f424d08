// Package catalog holds the marketing content for the three service tiers:
// display names, descriptions and feature lists shown on the pricing page and
// in transactional emails. Prices come from the fixed table in domain.
package catalog

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"

	"bluw/internal/domain"
)

//go:embed packages.yaml
var packagesYAML []byte

type PackageInfo struct {
	Tier        string   `yaml:"tier" json:"tier"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
	Amount      int64    `yaml:"-" json:"amount"`
	Currency    string   `yaml:"-" json:"currency"`
}

type Catalog struct {
	byTier map[domain.Package]PackageInfo
	tiers  []PackageInfo
}

type catalogFile struct {
	Packages []PackageInfo `yaml:"packages"`
}

// Load parses the embedded catalog and joins each tier with its fixed price.
// A tier without a price, or a priced tier missing from the catalog, is a
// build mistake and fails loudly.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(packagesYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing package catalog: %w", err)
	}

	c := &Catalog{byTier: make(map[domain.Package]PackageInfo)}

	for _, info := range file.Packages {
		tier := domain.Package(info.Tier)
		price, ok := tier.Price()
		if !ok {
			return nil, fmt.Errorf("catalog tier %q has no price", info.Tier)
		}
		info.Amount = price
		info.Currency = domain.DefaultCurrency
		c.byTier[tier] = info
		c.tiers = append(c.tiers, info)
	}

	for _, tier := range domain.Packages() {
		if _, ok := c.byTier[tier]; !ok {
			return nil, fmt.Errorf("catalog is missing tier %q", tier)
		}
	}

	return c, nil
}

func (c *Catalog) Get(tier domain.Package) (PackageInfo, bool) {
	info, ok := c.byTier[tier]
	return info, ok
}

// DisplayName returns the French display name for a tier, falling back to
// a generic label for unknown values.
func (c *Catalog) DisplayName(tier domain.Package) string {
	if info, ok := c.byTier[tier]; ok {
		return info.Name
	}
	return "Forfait"
}

// List returns the tiers in catalog order, cheapest first.
func (c *Catalog) List() []PackageInfo {
	return c.tiers
}
