package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/slotwise/booking-app/models"
	"github.com/slotwise/booking-app/redis"
	"github.com/slotwise/booking-app/scheduling"
)

// SchedulingStore adapts GORM to the scheduling core's Store interface.
// Outside a booking transaction it may serve tenant schedule config from the
// Redis cache; transactional clones always read the database.
type SchedulingStore struct {
	db       *gorm.DB
	useCache bool
}

func NewSchedulingStore(gdb *gorm.DB) *SchedulingStore {
	return &SchedulingStore{db: gdb, useCache: true}
}

// DefaultBookingPolicy is applied for tenants that never saved a policy.
func DefaultBookingPolicy(tenantID uint) models.BookingPolicy {
	return models.BookingPolicy{
		TenantID:              tenantID,
		DefaultDuration:       30,
		MaxAdvanceBookingDays: 30,
		AllowSameDayBooking:   true,
	}
}

func (s *SchedulingStore) ScheduleConfig(ctx context.Context, tenantID uint) (scheduling.Config, error) {
	if s.useCache {
		if cfg, ok := redis.GetScheduleConfig(ctx, tenantID); ok {
			return *cfg, nil
		}
	}

	var cfg scheduling.Config
	err := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&cfg.Policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg.Policy = DefaultBookingPolicy(tenantID)
	} else if err != nil {
		return cfg, err
	}

	if err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("day_of_week asc").
		Find(&cfg.Weekly).Error; err != nil {
		return cfg, err
	}

	if s.useCache {
		redis.SetScheduleConfig(ctx, tenantID, &cfg)
	}
	return cfg, nil
}

func (s *SchedulingStore) OverrideForDate(ctx context.Context, tenantID uint, date time.Time) (*models.DateOverride, error) {
	var override models.DateOverride
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND date = ?", tenantID, date.Format("2006-01-02")).
		First(&override).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &override, nil
}

func (s *SchedulingStore) AppointmentsForDate(ctx context.Context, tenantID uint, date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND date = ?", tenantID, date.Format("2006-01-02")).
		Order("start_time asc").
		Find(&appointments).Error
	return appointments, err
}

func (s *SchedulingStore) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.WithContext(ctx).First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s *SchedulingStore) ServiceByID(ctx context.Context, tenantID, serviceID uint) (*models.Service, error) {
	var svc models.Service
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&svc, serviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *SchedulingStore) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Create(appt).Error
}

func (s *SchedulingStore) SaveAppointment(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Save(appt).Error
}

// Book runs fn inside one transaction with the tenant row locked. The row
// lock is the per-tenant serialization point: it closes the gap race where
// two bookings on an empty day both see no conflicts and both insert.
func (s *SchedulingStore) Book(ctx context.Context, tenantID uint, fn func(tx scheduling.Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked models.Tenant
		if err := tx.Raw("SELECT id FROM tenants WHERE id = ? FOR UPDATE", tenantID).Scan(&locked).Error; err != nil {
			return err
		}
		if locked.ID == 0 {
			return &scheduling.ValidationError{Field: "tenant_id", Message: "unknown tenant"}
		}
		return fn(&SchedulingStore{db: tx})
	})
	if err != nil && isRetryable(err) {
		return &scheduling.ConcurrencyError{Err: err}
	}
	return err
}

// isRetryable matches the Postgres failures a second attempt can win:
// serialization failures and deadlocks.
func isRetryable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "deadlock detected")
}
