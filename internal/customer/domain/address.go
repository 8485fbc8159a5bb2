package domain

import (
	"fmt"

	"github.com/smallbiznis/storefront/pkg/domainerr"
)

// Address is an immutable postal address. All fields are validated at
// construction, so any Address in circulation is well formed. The struct is
// comparable; equality is structural (==).
type Address struct {
	street  string
	number  int
	zipcode string
	city    string
	state   string
}

// NewAddress validates and builds an Address.
func NewAddress(street string, number int, zipcode, city, state string) (Address, error) {
	switch {
	case street == "":
		return Address{}, domainerr.Validation("Street is required")
	case number <= 0:
		return Address{}, domainerr.Validation("Number is required")
	case zipcode == "":
		return Address{}, domainerr.Validation("Zip Code is required")
	case city == "":
		return Address{}, domainerr.Validation("City is required")
	case state == "":
		return Address{}, domainerr.Validation("State is required")
	}

	return Address{
		street:  street,
		number:  number,
		zipcode: zipcode,
		city:    city,
		state:   state,
	}, nil
}

func (a Address) Street() string  { return a.street }
func (a Address) Number() int     { return a.number }
func (a Address) Zipcode() string { return a.zipcode }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }

// String renders the fixed-order display form.
func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s, %s, %s", a.street, a.number, a.city, a.state, a.zipcode)
}
