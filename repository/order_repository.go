package repository

import (
	"time"

	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("status = ?", status).Find(&out).Error
	return out, err
}

// AssignDriverGuard moves PENDING -> ASSIGNED and attaches the driver in one
// conditional update. Zero rows affected means the order was not PENDING.
func (r *OrderRepository) AssignDriverGuard(tx *gorm.DB, orderID, driverID string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("order_id = ? AND status = ?", orderID, entity.OrderPending).
		Updates(map[string]any{"status": entity.OrderAssigned, "driver_id": driverID})
	return res.RowsAffected, res.Error
}

// MarkDeliveredGuard moves ASSIGNED -> DELIVERED. Zero rows affected means the
// order was not ASSIGNED.
func (r *OrderRepository) MarkDeliveredGuard(tx *gorm.DB, orderID string, at time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("order_id = ? AND status = ?", orderID, entity.OrderAssigned).
		Updates(map[string]any{"status": entity.OrderDelivered, "delivered_at": at})
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID string) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}
