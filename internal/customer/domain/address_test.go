package domain

import (
	"testing"

	"github.com/smallbiznis/storefront/pkg/domainerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddressValidation(t *testing.T) {
	cases := []struct {
		name    string
		street  string
		number  int
		zipcode string
		city    string
		state   string
		wantErr string
	}{
		{"empty street", "", 5, "9000-90", "São Paulo", "São Paulo", "Street is required"},
		{"zero number", "Rua A", 0, "9000-90", "São Paulo", "São Paulo", "Number is required"},
		{"negative number", "Rua A", -1, "9000-90", "São Paulo", "São Paulo", "Number is required"},
		{"empty zipcode", "Rua A", 5, "", "São Paulo", "São Paulo", "Zip Code is required"},
		{"empty city", "Rua A", 5, "9000-90", "", "São Paulo", "City is required"},
		{"empty state", "Rua A", 5, "9000-90", "São Paulo", "", "State is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAddress(tc.street, tc.number, tc.zipcode, tc.city, tc.state)
			assert.EqualError(t, err, tc.wantErr)
			assert.True(t, domainerr.IsValidation(err))
		})
	}
}

func TestAddressString(t *testing.T) {
	address, err := NewAddress("Rua A", 5, "9000-90", "São Paulo", "São Paulo")
	require.NoError(t, err)
	assert.Equal(t, "Rua A, 5, São Paulo, São Paulo, 9000-90", address.String())
}

func TestAddressEqualityIsStructural(t *testing.T) {
	a, err := NewAddress("Rua A", 5, "9000-90", "São Paulo", "São Paulo")
	require.NoError(t, err)
	b, err := NewAddress("Rua A", 5, "9000-90", "São Paulo", "São Paulo")
	require.NoError(t, err)
	assert.True(t, a == b)
}
