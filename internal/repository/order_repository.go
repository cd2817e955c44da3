package repository

import (
	"time"

	"shop_manager/internal/models"

	"gorm.io/gorm"
)

// OrderFilter narrows List results. Zero values mean "no filter".
type OrderFilter struct {
	Status    string
	StartDate time.Time
	EndDate   time.Time
	Search    string // matches customer name, phone or order number
	Page      int
	Limit     int
}

type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type PaymentMethodCount struct {
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Count         int64                `json:"count"`
}

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetLatestByPrefix(prefix string) (*models.Order, error)
	List(filter OrderFilter) ([]models.Order, int64, error)
	GetByDateRange(start, end time.Time, excludeCancelled bool) ([]models.Order, error)
	CountByStatus() ([]StatusCount, error)
	CountByPaymentMethod() ([]PaymentMethodCount, error)
	Update(order *models.Order) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetLatestByPrefix returns the order with the highest order_no under the
// given period prefix.
func (r *orderRepository) GetLatestByPrefix(prefix string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("order_no LIKE ?", prefix+"%").
		Order("order_no DESC").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(filter OrderFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
		query = query.Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"customer_name LIKE ? OR customer_phone LIKE ? OR order_no LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.Limit).Offset((page - 1) * filter.Limit)
	}

	var orders []models.Order
	err := query.Order("created_at DESC").Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) GetByDateRange(start, end time.Time, excludeCancelled bool) ([]models.Order, error) {
	query := r.db.Where("order_date BETWEEN ? AND ?", start, end)
	if excludeCancelled {
		query = query.Where("status <> ?", models.OrderCancelled)
	}
	var orders []models.Order
	err := query.Find(&orders).Error
	return orders, err
}

func (r *orderRepository) CountByStatus() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (r *orderRepository) CountByPaymentMethod() ([]PaymentMethodCount, error) {
	var counts []PaymentMethodCount
	err := r.db.Model(&models.Order{}).
		Select("payment_method, count(*) as count").
		Group("payment_method").
		Scan(&counts).Error
	return counts, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Order{}, id).Error
}
