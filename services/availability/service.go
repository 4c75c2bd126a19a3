package availability

import (
	"context"
	"time"

	"salonbook/metrics"
	"salonbook/models"
	"salonbook/services"

	"go.uber.org/zap"
)

// AppointmentRepository reads the bookings that occupy staff.
type AppointmentRepository interface {
	FindActiveAppointments(ctx context.Context, from, to time.Time, excludeStatuses []string) ([]models.Appointment, error)
}

// StaffRepository reports how many staff members can take appointments.
type StaffRepository interface {
	CountStaffProfiles(ctx context.Context) (int, error)
}

// Service answers month calendar and slot list queries.
type Service struct {
	appointments    AppointmentRepository
	staff           StaffRepository
	schedule        Schedule
	loc             *time.Location
	excludeStatuses []string
	logger          *zap.Logger
}

func NewService(
	appointments AppointmentRepository,
	staff StaffRepository,
	schedule Schedule,
	loc *time.Location,
	excludeStatuses []string,
	logger *zap.Logger,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		appointments:    appointments,
		staff:           staff,
		schedule:        schedule,
		loc:             loc,
		excludeStatuses: excludeStatuses,
		logger:          logger,
	}
}

// Schedule exposes the working grid the service was built with.
func (s *Service) Schedule() Schedule { return s.schedule }

// Location exposes the business timezone.
func (s *Service) Location() *time.Location { return s.loc }

// GetAvailability builds the month calendar and, when q.Date is set, the slot list for that day.
func (s *Service) GetAvailability(ctx context.Context, q Query) (*models.AvailabilityResponse, error) {
	staff, err := s.staff.CountStaffProfiles(ctx)
	if err != nil {
		s.logger.Error("availability: failed to count staff", zap.Error(err))
		return nil, services.Internal("failed to load staff roster", err)
	}
	staff = max(staff, 0)

	from, to := q.Range()
	appts, err := s.appointments.FindActiveAppointments(ctx, from, to, s.excludeStatuses)
	if err != nil {
		s.logger.Error("availability: failed to load appointments",
			zap.Time("from", from), zap.Time("to", to), zap.Error(err))
		return nil, services.Internal("failed to load appointments", err)
	}
	byDay := GroupByDay(appts, s.loc)

	requested := 0
	if q.DurationRequested {
		requested = q.Duration
	}

	resp := &models.AvailabilityResponse{
		Month:           q.Month.Format(monthLayout),
		Staff:           staff,
		DurationMinutes: q.Duration,
		Days:            SummarizeMonth(q.Month, byDay, staff, requested, s.schedule),
	}

	if q.Date != nil {
		slotStaff := staff
		if s.schedule.IsClosedOn(*q.Date) {
			slotStaff = 0
		}
		key := q.Date.Format(dateLayout)
		resp.Date = key
		resp.Slots = GenerateSlots(BuildTimeline(byDay[key], s.schedule), slotStaff, q.Duration, s.schedule)
	}

	metrics.RecordAvailabilityQuery(q.Date != nil)
	s.logger.Debug("availability computed",
		zap.String("month", resp.Month),
		zap.Int("staff", staff),
		zap.Int("appointments", len(appts)),
		zap.Bool("withSlots", q.Date != nil))
	return resp, nil
}
