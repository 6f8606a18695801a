package memory

import (
	"fmt"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
	"github.com/moldworks/moldtrack/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage
type OrderRepository struct {
	orders map[entities.OrderID]entities.Order
	seq    []entities.OrderID
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[entities.OrderID]entities.Order),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// SaveOrder stores an order, replacing any order with the same id
func (r *OrderRepository) SaveOrder(order *entities.Order) error {
	if _, exists := r.orders[order.ID]; !exists {
		r.seq = append(r.seq, order.ID)
	}
	r.orders[order.ID] = *order
	return nil
}

// LoadOrders loads orders into the repository
func (r *OrderRepository) LoadOrders(orders []*entities.Order) error {
	for _, order := range orders {
		if err := r.SaveOrder(order); err != nil {
			return err
		}
	}
	return nil
}

// GetOrders returns every stored order in insertion order
func (r *OrderRepository) GetOrders() ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(r.orders))
	for _, id := range r.seq {
		if order, exists := r.orders[id]; exists {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// GetOrder returns the order with the given id
func (r *OrderRepository) GetOrder(id entities.OrderID) (*entities.Order, error) {
	order, exists := r.orders[id]
	if !exists {
		return nil, fmt.Errorf("order not found: %s", id)
	}
	return &order, nil
}

// MarkOrderDone transitions an order from plan to done
func (r *OrderRepository) MarkOrderDone(id entities.OrderID) error {
	order, exists := r.orders[id]
	if !exists {
		return fmt.Errorf("order not found: %s", id)
	}
	if err := order.MarkDone(); err != nil {
		return err
	}
	r.orders[id] = order
	return nil
}

// DeleteOrder removes an order from the store
func (r *OrderRepository) DeleteOrder(id entities.OrderID) error {
	if _, exists := r.orders[id]; !exists {
		return fmt.Errorf("order not found: %s", id)
	}
	delete(r.orders, id)
	return nil
}
