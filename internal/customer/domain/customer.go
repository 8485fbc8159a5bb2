// Package domain holds the customer aggregate. Entities keep their fields
// unexported and validate on construction and on every mutation, so an
// invalid customer cannot exist in memory.
package domain

import "github.com/smallbiznis/storefront/pkg/domainerr"

// Customer is an entity identified by id. The address is optional until the
// customer is activated; reward points only ever grow.
type Customer struct {
	id           string
	name         string
	address      *Address
	active       bool
	rewardPoints int
}

// NewCustomer builds an inactive customer with zero reward points.
func NewCustomer(id, name string) (*Customer, error) {
	if id == "" {
		return nil, domainerr.Validation("Id is required")
	}
	if name == "" {
		return nil, domainerr.Validation("Name is required")
	}

	return &Customer{id: id, name: name}, nil
}

// Restore rebuilds a persisted customer, re-running the construction
// invariants so a malformed row cannot produce a usable entity.
func Restore(id, name string, address *Address, active bool, rewardPoints int) (*Customer, error) {
	customer, err := NewCustomer(id, name)
	if err != nil {
		return nil, err
	}
	if address != nil {
		customer.ChangeAddress(*address)
	}
	if active {
		if err := customer.Activate(); err != nil {
			return nil, err
		}
	}
	customer.AddRewardPoints(rewardPoints)
	return customer, nil
}

func (c *Customer) ID() string   { return c.id }
func (c *Customer) Name() string { return c.name }

// Address returns the attached address, if any.
func (c *Customer) Address() (Address, bool) {
	if c.address == nil {
		return Address{}, false
	}
	return *c.address, true
}

// ChangeName renames the customer, keeping the non-empty invariant.
func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return domainerr.Validation("Name is required")
	}
	c.name = name
	return nil
}

// ChangeAddress attaches or replaces the customer's address.
func (c *Customer) ChangeAddress(address Address) {
	c.address = &address
}

// Activate marks the customer active. An address must be attached first.
func (c *Customer) Activate() error {
	if c.address == nil {
		return domainerr.Validation("Address is mandatory to activate a customer")
	}
	c.active = true
	return nil
}

// Deactivate always succeeds.
func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) IsActive() bool { return c.active }

// AddRewardPoints credits points to the accumulator.
func (c *Customer) AddRewardPoints(points int) {
	c.rewardPoints += points
}

func (c *Customer) RewardPoints() int { return c.rewardPoints }
