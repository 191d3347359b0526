package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRUT(t *testing.T) {
	assert.Equal(t, "12345678-K", NormalizeRUT(" 12.345.678-k "))
	assert.Equal(t, "9876543-2", NormalizeRUT("9.876.543-2"))
	assert.Equal(t, "", NormalizeRUT(""))
}

func TestIsPlausibleRUT(t *testing.T) {
	tests := []struct {
		rut  string
		want bool
	}{
		{"12.345.678-5", true},
		{"12345678-K", true},
		{"9876543-2", true},
		{"12345678", false},
		{"1234-5", false},
		{"abcdefgh-1", false},
		{"12345678-X", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.rut, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPlausibleRUT(tc.rut))
		})
	}
}

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("  María Pérez ", "12.345.678-5", "+56911111111", "maria@example.cl")
	require.NoError(t, err)
	assert.Equal(t, "María Pérez", c.Name)
	assert.Equal(t, "12345678-5", c.RUT)

	_, err = NewCustomer("", "", "", "")
	assert.Error(t, err)

	_, err = NewCustomer("María", "not-a-rut", "", "")
	assert.Error(t, err)

	// RUT stays optional at the counter.
	c2, err := NewCustomer("Cliente de paso", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, c2.RUT)
}

func TestCustomer_Update(t *testing.T) {
	c, err := NewCustomer("María Pérez", "", "", "")
	require.NoError(t, err)

	require.NoError(t, c.Update("María P. González", "12345678-5", "+56922222222", "", "prefiere transferencia"))
	assert.Equal(t, "María P. González", c.Name)
	assert.Equal(t, 2, c.GetVersion())

	assert.Error(t, c.Update("", "", "", "", ""))
}

func TestNewSupplier(t *testing.T) {
	s, err := NewSupplier("Importadora Norte SpA", "76.543.210-1", "", "ventas@norte.cl", "Iquique")
	require.NoError(t, err)
	assert.True(t, s.Active)
	assert.Equal(t, "76543210-1", s.RUT)

	s.Deactivate()
	assert.False(t, s.Active)
	s.Activate()
	assert.True(t, s.Active)

	_, err = NewSupplier("", "", "", "", "")
	assert.Error(t, err)
}
