package repository

import (
	"printflow/internal/models"

	"gorm.io/gorm"
)

type PrintOrderRepository struct {
	db *gorm.DB
}

func NewPrintOrderRepository(db *gorm.DB) *PrintOrderRepository {
	return &PrintOrderRepository{db: db}
}

func (r *PrintOrderRepository) Create(o *models.PrintOrder) error {
	return r.db.Create(o).Error
}

func (r *PrintOrderRepository) GetByID(id uint) (*models.PrintOrder, error) {
	var o models.PrintOrder
	err := r.db.First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByOrderID returns the oldest record bound to a Razorpay order ID.
// order_id carries no unique index, so duplicates are representable; callers
// that care about duplicates should not rely on this lookup alone.
func (r *PrintOrderRepository) GetByOrderID(orderID string) (*models.PrintOrder, error) {
	var o models.PrintOrder
	err := r.db.Where("order_id = ?", orderID).Order("id ASC").First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListPending returns unprinted orders, oldest first, for the print kiosk.
func (r *PrintOrderRepository) ListPending() ([]models.PrintOrder, error) {
	var orders []models.PrintOrder
	err := r.db.Where("printed = ?", false).Order("created_at ASC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkPrinted flips the printed flag; returns gorm.ErrRecordNotFound for unknown ids.
func (r *PrintOrderRepository) MarkPrinted(id uint) error {
	var o models.PrintOrder
	if err := r.db.First(&o, id).Error; err != nil {
		return err
	}
	o.Printed = true
	return r.db.Save(&o).Error
}

func (r *PrintOrderRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.PrintOrder{}).Count(&n).Error
	return n, err
}
