package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"onboard/internal/model"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBroker(ctx context.Context, brokerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	ListByBroker(ctx context.Context, brokerID uuid.UUID) ([]model.Customer, error)
	ListAll(ctx context.Context) ([]model.Customer, error)
	CountByBroker(ctx context.Context, brokerID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	RecentByBroker(ctx context.Context, brokerID uuid.UUID, limit int) ([]model.Customer, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountByBrokerCreatedBetween(ctx context.Context, brokerID uuid.UUID, start, end time.Time) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository builds a GORM-backed repository.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) DeleteByBroker(ctx context.Context, brokerID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, "broker_id = ?", brokerID).Error
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) ListByBroker(ctx context.Context, brokerID uuid.UUID) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.WithContext(ctx).
		Where("broker_id = ?", brokerID).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) CountByBroker(ctx context.Context, brokerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("broker_id = ?", brokerID).
		Count(&count).Error
	return count, err
}

func (r *customerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&count).Error
	return count, err
}

func (r *customerRepository) RecentByBroker(ctx context.Context, brokerID uuid.UUID, limit int) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.WithContext(ctx).
		Where("broker_id = ?", brokerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *customerRepository) CountByBrokerCreatedBetween(ctx context.Context, brokerID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("broker_id = ? AND created_at >= ? AND created_at < ?", brokerID, start, end).
		Count(&count).Error
	return count, err
}
