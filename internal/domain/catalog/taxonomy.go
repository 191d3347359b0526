package catalog

import (
	"sort"
	"strings"
)

// ModelEntry is one phone model with its sellable storage options
type ModelEntry struct {
	Name     string   `json:"name" mapstructure:"name"`
	Storages []string `json:"storages" mapstructure:"storages"`
}

// BrandEntry is one brand with its models
type BrandEntry struct {
	Name   string       `json:"name" mapstructure:"name"`
	Models []ModelEntry `json:"models" mapstructure:"models"`
}

// Taxonomy is the cascading brand/model/storage reference data behind the
// intake and sale forms. It is constructed once at startup from configuration
// and passed to whoever needs it; it is immutable afterwards, so it carries
// no locks and no process-wide state.
type Taxonomy struct {
	brands []string
	models map[string][]string            // brand -> models
	storts map[string]map[string][]string // brand -> model -> storages
}

// NewTaxonomy builds a taxonomy from its configured entries. Lookups are
// case-insensitive on brand and model.
func NewTaxonomy(entries []BrandEntry) *Taxonomy {
	t := &Taxonomy{
		models: make(map[string][]string),
		storts: make(map[string]map[string][]string),
	}
	for _, brand := range entries {
		key := strings.ToLower(brand.Name)
		if _, seen := t.storts[key]; seen {
			continue
		}
		t.brands = append(t.brands, brand.Name)
		t.storts[key] = make(map[string][]string)
		for _, model := range brand.Models {
			t.models[key] = append(t.models[key], model.Name)
			t.storts[key][strings.ToLower(model.Name)] = append([]string(nil), model.Storages...)
		}
	}
	sort.Strings(t.brands)
	return t
}

// Brands lists the configured brands, sorted
func (t *Taxonomy) Brands() []string {
	return append([]string(nil), t.brands...)
}

// ModelsFor lists the models of a brand, in configured order
func (t *Taxonomy) ModelsFor(brand string) []string {
	return append([]string(nil), t.models[strings.ToLower(brand)]...)
}

// StoragesFor lists the storage options of a model
func (t *Taxonomy) StoragesFor(brand, model string) []string {
	byModel, ok := t.storts[strings.ToLower(brand)]
	if !ok {
		return nil
	}
	return append([]string(nil), byModel[strings.ToLower(model)]...)
}

// Contains reports whether the brand/model/storage triple is configured.
// Empty storage matches any model that exists, since some models are sold
// without a storage distinction.
func (t *Taxonomy) Contains(brand, model, storage string) bool {
	byModel, ok := t.storts[strings.ToLower(brand)]
	if !ok {
		return false
	}
	storages, ok := byModel[strings.ToLower(model)]
	if !ok {
		return false
	}
	if storage == "" {
		return true
	}
	for _, s := range storages {
		if strings.EqualFold(s, storage) {
			return true
		}
	}
	return false
}
