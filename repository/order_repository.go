package repository

import (
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// List returns orders with their lines, newest first. A nil status filter
// returns every order, the archived ones included.
func (r *OrderRepository) List(status *entity.Status) ([]entity.Order, error) {
	q := r.DB.Preload("Lines").Order("created_at DESC, id DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var orders []entity.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Lines").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

// ReplaceLines swaps an order's line set inside the caller's transaction.
func (r *OrderRepository) ReplaceLines(tx *gorm.DB, orderID uint, lines []entity.OrderLine) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderLine{}).Error; err != nil {
		return err
	}
	for i := range lines {
		lines[i].ID = 0
		lines[i].OrderID = orderID
		if err := tx.Create(&lines[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, id).Error
	})
}
