package repository

import "github.com/smallbiznis/storefront/internal/customer/domain"

// CustomerModel is the persistence shape of a customer: one row with the
// address value object flattened into columns. An absent address is stored
// as empty address columns.
type CustomerModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name;type:text;not null"`
	Street       string `gorm:"column:street;type:text"`
	Number       int    `gorm:"column:number"`
	Zipcode      string `gorm:"column:zipcode;type:text"`
	City         string `gorm:"column:city;type:text"`
	State        string `gorm:"column:state;type:text"`
	Active       bool   `gorm:"column:active;not null;default:false"`
	RewardPoints int    `gorm:"column:reward_points;not null;default:0"`
}

// TableName sets the database table name.
func (CustomerModel) TableName() string { return "customers" }

func toModel(customer *domain.Customer) CustomerModel {
	model := CustomerModel{
		ID:           customer.ID(),
		Name:         customer.Name(),
		Active:       customer.IsActive(),
		RewardPoints: customer.RewardPoints(),
	}
	if address, ok := customer.Address(); ok {
		model.Street = address.Street()
		model.Number = address.Number()
		model.Zipcode = address.Zipcode()
		model.City = address.City()
		model.State = address.State()
	}
	return model
}

func toEntity(model CustomerModel) (*domain.Customer, error) {
	var address *domain.Address
	if model.Street != "" {
		built, err := domain.NewAddress(model.Street, model.Number, model.Zipcode, model.City, model.State)
		if err != nil {
			return nil, err
		}
		address = &built
	}
	return domain.Restore(model.ID, model.Name, address, model.Active, model.RewardPoints)
}
