package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTaxonomy() *Taxonomy {
	return NewTaxonomy([]BrandEntry{
		{
			Name: "Samsung",
			Models: []ModelEntry{
				{Name: "Galaxy S23", Storages: []string{"128GB", "256GB"}},
				{Name: "Galaxy A54", Storages: []string{"128GB"}},
			},
		},
		{
			Name: "Apple",
			Models: []ModelEntry{
				{Name: "iPhone 13", Storages: []string{"128GB", "256GB", "512GB"}},
			},
		},
	})
}

func TestTaxonomy_Brands(t *testing.T) {
	assert.Equal(t, []string{"Apple", "Samsung"}, testTaxonomy().Brands())
}

func TestTaxonomy_Cascade(t *testing.T) {
	tax := testTaxonomy()

	assert.Equal(t, []string{"Galaxy S23", "Galaxy A54"}, tax.ModelsFor("samsung"))
	assert.Equal(t, []string{"128GB", "256GB", "512GB"}, tax.StoragesFor("Apple", "iphone 13"))
	assert.Nil(t, tax.ModelsFor("Xiaomi"))
	assert.Nil(t, tax.StoragesFor("Samsung", "Galaxy S99"))
}

func TestTaxonomy_Contains(t *testing.T) {
	tax := testTaxonomy()

	assert.True(t, tax.Contains("Samsung", "Galaxy S23", "256GB"))
	assert.True(t, tax.Contains("SAMSUNG", "galaxy s23", "256gb"))
	assert.True(t, tax.Contains("Apple", "iPhone 13", ""))
	assert.False(t, tax.Contains("Samsung", "Galaxy S23", "512GB"))
	assert.False(t, tax.Contains("Xiaomi", "Redmi 12", "128GB"))
}

func TestTaxonomy_DuplicateBrandKeepsFirst(t *testing.T) {
	tax := NewTaxonomy([]BrandEntry{
		{Name: "Samsung", Models: []ModelEntry{{Name: "Galaxy S23"}}},
		{Name: "samsung", Models: []ModelEntry{{Name: "Galaxy Z Flip"}}},
	})

	assert.Equal(t, []string{"Samsung"}, tax.Brands())
	assert.Equal(t, []string{"Galaxy S23"}, tax.ModelsFor("Samsung"))
}
