package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/slotwise/booking-app/models"
)

// Config is the per-tenant scheduling configuration, fetched explicitly per
// request instead of living in a process-wide singleton.
type Config struct {
	Policy models.BookingPolicy
	Weekly []models.WeeklyHours
}

// Store is the persistence surface the orchestrator needs. Book runs fn in a
// single transaction with the tenant's calendar serialized, so the
// read-check-insert sequence is atomic against concurrent bookings.
type Store interface {
	ScheduleConfig(ctx context.Context, tenantID uint) (Config, error)
	OverrideForDate(ctx context.Context, tenantID uint, date time.Time) (*models.DateOverride, error)
	AppointmentsForDate(ctx context.Context, tenantID uint, date time.Time) ([]models.Appointment, error)
	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	ServiceByID(ctx context.Context, tenantID, serviceID uint) (*models.Service, error)
	CreateAppointment(ctx context.Context, appt *models.Appointment) error
	SaveAppointment(ctx context.Context, appt *models.Appointment) error
	Book(ctx context.Context, tenantID uint, fn func(tx Store) error) error
}

// Service composes the rule resolver, window validator, slot generator and
// conflict detector into the availability and booking operations.
type Service struct {
	store Store
	// Now is swappable for tests.
	Now func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, Now: time.Now}
}

// Availability is the answer to "what slots are free on date D?".
type Availability struct {
	Date   string                 `json:"date"`
	Open   bool                   `json:"open"`
	Reason string                 `json:"reason,omitempty"`
	Slots  []models.AvailableSlot `json:"slots"`
}

// BookingRequest carries the inputs for creating an appointment.
type BookingRequest struct {
	TenantID  uint
	ClientID  uint
	ServiceID uint
	Date      time.Time
	StartTime string // "HH:MM"
}

// GetAvailableSlots resolves the effective window for the date and marks each
// generated candidate available or unavailable with a reason. Read-only; runs
// without locking.
func (s *Service) GetAvailableSlots(ctx context.Context, tenantID uint, date time.Time, serviceID uint) (*Availability, error) {
	cfg, err := s.store.ScheduleConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	duration := cfg.Policy.DefaultDuration
	if serviceID != 0 {
		svc, err := s.store.ServiceByID(ctx, tenantID, serviceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, &ValidationError{Field: "service_id", Message: "unknown service"}
		}
		if svc.Duration > 0 {
			duration = svc.Duration
		}
	}
	// Granularity follows the requested duration; without a service it falls
	// back to the tenant default.
	granularity := duration

	override, err := s.store.OverrideForDate(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	window, err := ResolveDayWindow(cfg.Weekly, override, date)
	if err != nil {
		return nil, err
	}

	result := &Availability{Date: date.Format("2006-01-02"), Open: window.IsOpen}
	if !window.IsOpen {
		result.Reason = window.ClosedReason
		result.Slots = []models.AvailableSlot{}
		return result, nil
	}

	appointments, err := s.store.AppointmentsForDate(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	busy, err := BusyIntervals(appointments, cfg.Policy.BufferTime, 0)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	for _, start := range GenerateSlots(window, duration, granularity) {
		slot := models.AvailableSlot{Time: FormatClock(start), Available: true}
		if err := CheckBookingWindow(cfg.Policy, now, date, start); err != nil {
			slot.Available = false
			slot.Reason = models.ReasonOutsideWindow
		} else if OverlapsAny(Interval{Start: start, End: start + duration}, busy) {
			slot.Available = false
			slot.Reason = models.ReasonConflict
		}
		result.Slots = append(result.Slots, slot)
	}
	return result, nil
}

// CheckConflict answers "can I book start S for duration Dur?" without
// reserving anything. excludeID skips the caller's own appointment when
// probing a reschedule.
func (s *Service) CheckConflict(ctx context.Context, tenantID uint, date time.Time, startTime string, duration int, excludeID uint) (*models.AppointmentConflict, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return nil, &ValidationError{Field: "start_time", Message: err.Error()}
	}

	cfg, err := s.store.ScheduleConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		duration = cfg.Policy.DefaultDuration
	}

	appointments, err := s.store.AppointmentsForDate(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}

	candidate := Interval{Start: start, End: start + duration}
	conflicts, err := FindConflicts(appointments, cfg.Policy.BufferTime, excludeID, candidate)
	if err != nil {
		return nil, err
	}

	result := &models.AppointmentConflict{HasConflict: len(conflicts) > 0}
	if !result.HasConflict {
		return result, nil
	}

	for _, appt := range conflicts {
		result.ConflictingAppointments = append(result.ConflictingAppointments, appt.Summary())
	}

	override, err := s.store.OverrideForDate(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	window, err := ResolveDayWindow(cfg.Weekly, override, date)
	if err != nil {
		return nil, err
	}
	busy, err := BusyIntervals(appointments, cfg.Policy.BufferTime, excludeID)
	if err != nil {
		return nil, err
	}
	result.SuggestedTimes = s.suggestTimes(window, cfg.Policy, date, duration, busy, start)
	return result, nil
}

// CreateAppointment re-validates the booking window and conflicts inside the
// same transaction that inserts the row. A lost race is retried once before
// the ConcurrencyError is surfaced.
func (s *Service) CreateAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	startMin, err := ParseClock(req.StartTime)
	if err != nil {
		return nil, &ValidationError{Field: "start_time", Message: err.Error()}
	}
	if req.ClientID == 0 {
		return nil, &ValidationError{Field: "client_id", Message: "client is required"}
	}
	if req.ServiceID == 0 {
		return nil, &ValidationError{Field: "service_id", Message: "service is required"}
	}

	var created *models.Appointment
	attempt := func() error {
		return s.store.Book(ctx, req.TenantID, func(tx Store) error {
			svc, err := tx.ServiceByID(ctx, req.TenantID, req.ServiceID)
			if err != nil {
				return err
			}
			if svc == nil {
				return &ValidationError{Field: "service_id", Message: "unknown service"}
			}

			cfg, err := tx.ScheduleConfig(ctx, req.TenantID)
			if err != nil {
				return err
			}
			duration := svc.Duration
			if duration <= 0 {
				duration = cfg.Policy.DefaultDuration
			}

			if err := s.checkBookable(ctx, tx, cfg, req.TenantID, req.Date, startMin, duration, 0); err != nil {
				return err
			}

			appt := &models.Appointment{
				TenantID:  req.TenantID,
				ClientID:  req.ClientID,
				ServiceID: req.ServiceID,
				Date:      req.Date,
				StartTime: FormatClock(startMin),
				EndTime:   FormatClock(startMin + duration),
				Duration:  duration,
				Status:    models.StatusPending,
				Price:     svc.Price,
			}
			if err := tx.CreateAppointment(ctx, appt); err != nil {
				return err
			}
			created = appt
			return nil
		})
	}

	err = attempt()
	var raced *ConcurrencyError
	if errors.As(err, &raced) {
		err = attempt()
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Reschedule moves an appointment to a new start, excluding its own prior
// slot from the conflict check.
func (s *Service) Reschedule(ctx context.Context, appointmentID uint, newDate time.Time, newStart string) (*models.Appointment, error) {
	startMin, err := ParseClock(newStart)
	if err != nil {
		return nil, &ValidationError{Field: "start_time", Message: err.Error()}
	}

	appt, err := s.store.AppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, &ValidationError{Field: "appointment_id", Message: "appointment not found"}
	}

	var updated *models.Appointment
	attempt := func() error {
		return s.store.Book(ctx, appt.TenantID, func(tx Store) error {
			current, err := tx.AppointmentByID(ctx, appointmentID)
			if err != nil {
				return err
			}
			if current == nil {
				return &ValidationError{Field: "appointment_id", Message: "appointment not found"}
			}
			if !current.Status.Occupies() {
				return &ValidationError{Field: "status", Message: "only pending, confirmed or in-progress appointments can be rescheduled"}
			}

			cfg, err := tx.ScheduleConfig(ctx, current.TenantID)
			if err != nil {
				return err
			}
			if err := s.checkBookable(ctx, tx, cfg, current.TenantID, newDate, startMin, current.Duration, current.ID); err != nil {
				return err
			}

			current.Date = newDate
			current.StartTime = FormatClock(startMin)
			current.EndTime = FormatClock(startMin + current.Duration)
			if err := tx.SaveAppointment(ctx, current); err != nil {
				return err
			}
			updated = current
			return nil
		})
	}

	err = attempt()
	var raced *ConcurrencyError
	if errors.As(err, &raced) {
		err = attempt()
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Transition applies a lifecycle step, rejecting anything the state machine
// does not allow.
func (s *Service) Transition(ctx context.Context, appointmentID uint, to models.AppointmentStatus, reason string) (*models.Appointment, error) {
	appt, err := s.store.AppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, &ValidationError{Field: "appointment_id", Message: "appointment not found"}
	}
	if !appt.Status.CanTransitionTo(to) {
		return nil, &InvalidTransitionError{From: appt.Status, To: to}
	}

	appt.Status = to
	if to == models.StatusCancelled {
		appt.CancelReason = reason
	}
	if err := s.store.SaveAppointment(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// checkBookable runs the closed-day, open-window, booking-window and conflict
// checks for one candidate interval. Called inside the booking transaction.
func (s *Service) checkBookable(ctx context.Context, tx Store, cfg Config, tenantID uint, date time.Time, startMin, duration int, excludeID uint) error {
	override, err := tx.OverrideForDate(ctx, tenantID, date)
	if err != nil {
		return err
	}
	window, err := ResolveDayWindow(cfg.Weekly, override, date)
	if err != nil {
		return err
	}
	if !window.IsOpen {
		return &ClosedDayError{Reason: window.ClosedReason, Label: window.Label}
	}
	if startMin < window.Open || startMin+duration > window.Close {
		return &ValidationError{Field: "start_time", Message: "requested time falls outside the open window"}
	}
	if err := CheckBookingWindow(cfg.Policy, s.Now(), date, startMin); err != nil {
		return err
	}

	appointments, err := tx.AppointmentsForDate(ctx, tenantID, date)
	if err != nil {
		return err
	}
	candidate := Interval{Start: startMin, End: startMin + duration}
	conflicts, err := FindConflicts(appointments, cfg.Policy.BufferTime, excludeID, candidate)
	if err != nil {
		return err
	}
	if len(conflicts) == 0 {
		return nil
	}

	conflictErr := &ConflictError{}
	for _, appt := range conflicts {
		conflictErr.Conflicts = append(conflictErr.Conflicts, appt.Summary())
	}
	busy, err := BusyIntervals(appointments, cfg.Policy.BufferTime, excludeID)
	if err != nil {
		return err
	}
	conflictErr.Suggestions = s.suggestTimes(window, cfg.Policy, date, duration, busy, startMin)
	return conflictErr
}

// suggestTimes picks up to MaxSuggestions conflict-free slots nearest the
// requested start that also satisfy the booking window.
func (s *Service) suggestTimes(window DayWindow, policy models.BookingPolicy, date time.Time, duration int, busy []Interval, requestedStart int) []string {
	now := s.Now()
	var times []string
	for _, start := range SuggestAlternatives(window, duration, duration, busy, requestedStart) {
		if CheckBookingWindow(policy, now, date, start) != nil {
			continue
		}
		times = append(times, FormatClock(start))
		if len(times) == MaxSuggestions {
			break
		}
	}
	return times
}
