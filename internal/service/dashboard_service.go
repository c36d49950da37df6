package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"onboard/internal/model"
	"onboard/internal/repository"
)

const recentLimit = 5

// BrokerDashboard aggregates a single broker's customer activity.
type BrokerDashboard struct {
	CustomersCount int64            `json:"customers_count"`
	NewThisMonth   int64            `json:"new_this_month"`
	Recent         []model.Customer `json:"recent"`
}

// AdminDashboard aggregates activity across all brokers and customers.
type AdminDashboard struct {
	BrokersCount          int64        `json:"brokers_count"`
	CustomersCount        int64        `json:"customers_count"`
	NewCustomersThisMonth int64        `json:"new_customers_this_month"`
	RecentSignups         []model.User `json:"recent_signups"`
}

// DashboardService serves aggregate reads scoped by the acting identity.
type DashboardService interface {
	ForBroker(ctx context.Context, brokerID uuid.UUID) (*BrokerDashboard, error)
	ForAdmin(ctx context.Context) (*AdminDashboard, error)
}

type dashboardService struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	now       func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(users repository.UserRepository, customers repository.CustomerRepository) DashboardService {
	return &dashboardService{users: users, customers: customers, now: time.Now}
}

// ForBroker returns the dashboard scoped to the given broker.
func (s *dashboardService) ForBroker(ctx context.Context, brokerID uuid.UUID) (*BrokerDashboard, error) {
	count, err := s.customers.CountByBroker(ctx, brokerID)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	start, end := monthBounds(s.now())
	newThisMonth, err := s.customers.CountByBrokerCreatedBetween(ctx, brokerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("count new customers: %w", err)
	}

	recent, err := s.customers.RecentByBroker(ctx, brokerID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent customers: %w", err)
	}

	return &BrokerDashboard{
		CustomersCount: count,
		NewThisMonth:   newThisMonth,
		Recent:         recent,
	}, nil
}

// ForAdmin returns the global dashboard.
func (s *dashboardService) ForAdmin(ctx context.Context) (*AdminDashboard, error) {
	brokers, err := s.users.CountBrokers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count brokers: %w", err)
	}

	customers, err := s.customers.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	start, end := monthBounds(s.now())
	newThisMonth, err := s.customers.CountCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("count new customers: %w", err)
	}

	signups, err := s.users.RecentBrokers(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent signups: %w", err)
	}

	return &AdminDashboard{
		BrokersCount:          brokers,
		CustomersCount:        customers,
		NewCustomersThisMonth: newThisMonth,
		RecentSignups:         signups,
	}, nil
}

// monthBounds returns the half-open interval [start of now's calendar month,
// start of the next month) in now's location. The half-open end includes the
// last instant of the month while excluding the first instant of the next.
func monthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}
