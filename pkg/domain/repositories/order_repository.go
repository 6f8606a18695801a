package repositories

import "github.com/moldworks/moldtrack/pkg/domain/entities"

// OrderRepository provides access to production orders
type OrderRepository interface {
	GetOrders() ([]entities.Order, error)
	GetOrder(id entities.OrderID) (*entities.Order, error)
	SaveOrder(order *entities.Order) error
	LoadOrders(orders []*entities.Order) error
	MarkOrderDone(id entities.OrderID) error
	DeleteOrder(id entities.OrderID) error
}
