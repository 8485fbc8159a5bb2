package repository

import "github.com/smallbiznis/storefront/internal/order/domain"

// OrderModel is the persistence shape of the order root. The precomputed
// total lives on the row; the authoritative figure is always recomputed
// from the aggregate before a write.
type OrderModel struct {
	ID         string           `gorm:"column:id;primaryKey"`
	CustomerID string           `gorm:"column:customer_id;type:text;not null;index"`
	Total      float64          `gorm:"column:total;not null"`
	Items      []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName sets the database table name.
func (OrderModel) TableName() string { return "orders" }

// OrderItemModel is one persisted order line. OrderID is the owning
// foreign key; ProductID is a bare reference into the catalog.
type OrderItemModel struct {
	ID        string  `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name;type:text;not null"`
	Price     float64 `gorm:"column:price;not null"`
	ProductID string  `gorm:"column:product_id;type:text;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
	OrderID   string  `gorm:"column:order_id;type:text;not null;index"`
}

// TableName sets the database table name.
func (OrderItemModel) TableName() string { return "order_items" }

func toModel(order *domain.Order) OrderModel {
	return OrderModel{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		Total:      order.Total(),
		Items:      toItemModels(order),
	}
}

func toItemModels(order *domain.Order) []OrderItemModel {
	items := order.Items()
	models := make([]OrderItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, OrderItemModel{
			ID:        item.ID(),
			Name:      item.Name(),
			Price:     item.UnitPrice(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			OrderID:   order.ID(),
		})
	}
	return models
}

// toEntity reconstructs the aggregate through the validating constructors,
// so a malformed row set (an order without items, a zero quantity) fails
// instead of producing an invalid aggregate.
func toEntity(model OrderModel) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(model.Items))
	for _, itemModel := range model.Items {
		item, err := domain.NewOrderItem(
			itemModel.ID,
			itemModel.Name,
			itemModel.Price,
			itemModel.ProductID,
			itemModel.Quantity,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return domain.NewOrder(model.ID, model.CustomerID, items)
}
