package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"legalhub-service/internal/app/config"
	"legalhub-service/internal/app/contracts"
	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAppointmentRepository mimics the mongo collection, including the unique
// constraints on slotKey and confirmationNumber.
type fakeAppointmentRepository struct {
	mu               sync.Mutex
	appointments     map[string]*models.Appointment
	nextID           int
	forcedCollisions int
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.forcedCollisions > 0 {
		f.forcedCollisions--
		return "", ErrDuplicateConfirmationCode
	}
	for _, existing := range f.appointments {
		if appointment.SlotKey != "" && existing.SlotKey == appointment.SlotKey {
			return "", exceptions.ErrSlotAlreadyBooked(errors.New("duplicate slot key"))
		}
		if existing.ConfirmationCode == appointment.ConfirmationCode {
			return "", ErrDuplicateConfirmationCode
		}
	}

	f.nextID++
	id := fmt.Sprintf("%024d", f.nextID)
	stored := *appointment
	stored.ID = id
	f.appointments[id] = &stored
	return id, nil
}

func (f *fakeAppointmentRepository) FindAll(ctx context.Context, filter *requests.ListAppointments) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if filter.Status != "" && appointment.Status != filter.Status {
			continue
		}
		if filter.ClientEmail != "" && appointment.ClientEmail != filter.ClientEmail {
			continue
		}
		result = append(result, *appointment)
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) FindByConfirmationCode(ctx context.Context, confirmationCode string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, appointment := range f.appointments {
		if appointment.ConfirmationCode == confirmationCode {
			copied := *appointment
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepository) FindBookedSlotsByDate(ctx context.Context, date time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booked := make([]string, 0)
	for _, appointment := range f.appointments {
		if appointment.Date.Equal(date) && models.IsActiveStatus(appointment.Status) {
			booked = append(booked, appointment.TimeSlot)
		}
	}
	return booked, nil
}

func (f *fakeAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.appointments[appointment.ID]; !ok {
		return exceptions.ErrAppointmentNotExist(errors.New("not found"))
	}
	if appointment.SlotKey != "" {
		for id, existing := range f.appointments {
			if id != appointment.ID && existing.SlotKey == appointment.SlotKey {
				return exceptions.ErrSlotAlreadyBooked(errors.New("duplicate slot key"))
			}
		}
	}
	stored := *appointment
	f.appointments[appointment.ID] = &stored
	return nil
}

// fakeLockService gives SetNX semantics over a plain map.
type fakeLockService struct {
	mu    sync.Mutex
	locks map[string]string
}

func newFakeLockService() *fakeLockService {
	return &fakeLockService{locks: make(map[string]string)}
}

func (f *fakeLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, held := f.locks[key]; held {
		return false, "", nil
	}
	lockValue := key + "-owner"
	f.locks[key] = lockValue
	return true, lockValue, nil
}

func (f *fakeLockService) Unlock(ctx context.Context, key, lockValue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.locks[key] == lockValue {
		delete(f.locks, key)
	}
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*contracts.AppointmentEvent
}

func (f *fakePublisher) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func newTestUsecase(repo AppointmentRepository, locks contracts.LockerService, publisher contracts.NotificationPublisher) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: repo,
		LockService:           locks,
		NotificationPublisher: publisher,
		InternalConfig: &config.InternalConfig{
			App: config.App{SlotLockTTLInSeconds: 5},
		},
		Log: zap.NewNop(),
	}
}

func buildCreateRequest(slot string) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		ServiceCategory: constvars.ServiceCategoryLegal,
		ServiceTitle:    "Contract Review",
		ServicePrice:    150,
		Date:            "2026-09-15",
		TimeSlot:        slot,
		ClientName:      "Asha Verma",
		ClientEmail:     "asha@example.com",
	}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("books a free slot as pending with prefixed confirmation number", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		locks := newFakeLockService()
		publisher := &fakePublisher{}
		uc := newTestUsecase(repo, locks, publisher)

		appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("09:00 AM"))
		require.NoError(t, err)

		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
		assert.True(t, appointment.Active)
		assert.True(t, strings.HasPrefix(appointment.ConfirmationCode, "LGL-"))
		assert.Len(t, appointment.ConfirmationCode, 10)
		assert.NotEmpty(t, appointment.ID)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, contracts.NotificationEventBooked, publisher.events[0].Event)

		// The lock must be released once the booking commits.
		assert.Empty(t, locks.locks)
	})

	t.Run("career bookings get the CAR prefix", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		request := buildCreateRequest("09:00 AM")
		request.ServiceCategory = constvars.ServiceCategoryCareer
		appointment, err := uc.CreateAppointment(ctx, request)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(appointment.ConfirmationCode, "CAR-"))
	})

	t.Run("rejects a second booking for the same slot", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		_, err := uc.CreateAppointment(ctx, buildCreateRequest("10:30 AM"))
		require.NoError(t, err)

		_, err = uc.CreateAppointment(ctx, buildCreateRequest("10:30 AM"))
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("different slots on the same day do not conflict", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		_, err := uc.CreateAppointment(ctx, buildCreateRequest("09:00 AM"))
		require.NoError(t, err)
		_, err = uc.CreateAppointment(ctx, buildCreateRequest("10:30 AM"))
		require.NoError(t, err)
	})

	t.Run("same slot on different days does not conflict", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		first := buildCreateRequest("09:00 AM")
		second := buildCreateRequest("09:00 AM")
		second.Date = "2026-09-16"

		_, err := uc.CreateAppointment(ctx, first)
		require.NoError(t, err)
		_, err = uc.CreateAppointment(ctx, second)
		require.NoError(t, err)
	})

	t.Run("returns conflict while the slot lock is held elsewhere", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		locks := newFakeLockService()
		uc := newTestUsecase(repo, locks, &fakePublisher{})

		_, _, err := locks.TryLock(ctx, "appointment_slot_lock:2026-09-15:12:00 PM", time.Second)
		require.NoError(t, err)

		_, err = uc.CreateAppointment(ctx, buildCreateRequest("12:00 PM"))
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("retries confirmation number collisions", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		repo.forcedCollisions = 2
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("01:30 PM"))
		require.NoError(t, err)
		assert.NotEmpty(t, appointment.ConfirmationCode)
	})

	t.Run("gives up after exhausting confirmation number attempts", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		repo.forcedCollisions = maxConfirmationCodeAttempts
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		_, err := uc.CreateAppointment(ctx, buildCreateRequest("03:00 PM"))
		require.Error(t, err)
		assert.Equal(t, constvars.StatusInternalServerError, statusCodeOf(t, err))
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		request := buildCreateRequest("09:00 AM")
		request.Date = "15/09/2026"
		_, err := uc.CreateAppointment(ctx, request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
	})

	t.Run("concurrent bookings for one slot produce exactly one winner", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		const workers = 16
		var wg sync.WaitGroup
		results := make(chan error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.CreateAppointment(ctx, buildCreateRequest("04:30 PM"))
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		successes := 0
		for err := range results {
			if err == nil {
				successes++
			} else {
				assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
			}
		}
		assert.Equal(t, 1, successes)
	})
}

func TestGetSlotAvailability(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAppointmentRepository()
	uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

	_, err := uc.CreateAppointment(ctx, buildCreateRequest("09:00 AM"))
	require.NoError(t, err)
	_, err = uc.CreateAppointment(ctx, buildCreateRequest("12:00 PM"))
	require.NoError(t, err)

	availability, err := uc.GetSlotAvailability(ctx, "2026-09-15")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"09:00 AM", "12:00 PM"}, availability.BookedSlots)
	assert.ElementsMatch(t, []string{"10:30 AM", "01:30 PM", "03:00 PM", "04:30 PM"}, availability.AvailableSlots)

	t.Run("an untouched day offers every slot", func(t *testing.T) {
		availability, err := uc.GetSlotAvailability(ctx, "2026-09-20")
		require.NoError(t, err)
		assert.Empty(t, availability.BookedSlots)
		assert.Equal(t, constvars.AppointmentTimeSlots, availability.AvailableSlots)
	})
}

func TestUpdateAppointmentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelling frees the slot for rebooking", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("09:00 AM"))
		require.NoError(t, err)

		cancelled, err := uc.UpdateAppointmentStatus(ctx, appointment.ID, &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusCancelled,
		})
		require.NoError(t, err)
		assert.False(t, cancelled.Active)
		assert.Empty(t, cancelled.SlotKey)

		_, err = uc.CreateAppointment(ctx, buildCreateRequest("09:00 AM"))
		require.NoError(t, err)
	})

	t.Run("completing frees the slot", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("10:30 AM"))
		require.NoError(t, err)

		completed, err := uc.UpdateAppointmentStatus(ctx, appointment.ID, &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusCompleted,
		})
		require.NoError(t, err)
		assert.True(t, completed.Active)

		availability, err := uc.GetSlotAvailability(ctx, "2026-09-15")
		require.NoError(t, err)
		assert.Contains(t, availability.AvailableSlots, "10:30 AM")
	})

	t.Run("reactivation fails when the slot has been taken since", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		first, err := uc.CreateAppointment(ctx, buildCreateRequest("12:00 PM"))
		require.NoError(t, err)

		_, err = uc.UpdateAppointmentStatus(ctx, first.ID, &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusCancelled,
		})
		require.NoError(t, err)

		_, err = uc.CreateAppointment(ctx, buildCreateRequest("12:00 PM"))
		require.NoError(t, err)

		_, err = uc.UpdateAppointmentStatus(ctx, first.ID, &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusConfirmed,
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("01:30 PM"))
		require.NoError(t, err)

		_, err = uc.UpdateAppointmentStatus(ctx, appointment.ID, &requests.UpdateAppointmentStatus{Status: "archived"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
	})

	t.Run("missing appointment returns not found", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		_, err := uc.UpdateAppointmentStatus(ctx, "missing", &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusConfirmed,
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestUpdateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("reschedules to a free slot", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		publisher := &fakePublisher{}
		uc := newTestUsecase(repo, newFakeLockService(), publisher)

		appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("09:00 AM"))
		require.NoError(t, err)

		updated, err := uc.UpdateAppointment(ctx, appointment.ID, &requests.UpdateAppointment{
			TimeSlot: "03:00 PM",
		})
		require.NoError(t, err)
		assert.Equal(t, "03:00 PM", updated.TimeSlot)

		availability, err := uc.GetSlotAvailability(ctx, "2026-09-15")
		require.NoError(t, err)
		assert.Contains(t, availability.AvailableSlots, "09:00 AM")
		assert.Contains(t, availability.BookedSlots, "03:00 PM")

		lastEvent := publisher.events[len(publisher.events)-1]
		assert.Equal(t, contracts.NotificationEventRescheduled, lastEvent.Event)
	})

	t.Run("refuses to reschedule into an occupied slot", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		_, err := uc.CreateAppointment(ctx, buildCreateRequest("09:00 AM"))
		require.NoError(t, err)
		second, err := uc.CreateAppointment(ctx, buildCreateRequest("10:30 AM"))
		require.NoError(t, err)

		_, err = uc.UpdateAppointment(ctx, second.ID, &requests.UpdateAppointment{
			TimeSlot: "09:00 AM",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("rescheduling to the current slot is not a conflict", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("10:30 AM"))
		require.NoError(t, err)

		updated, err := uc.UpdateAppointment(ctx, appointment.ID, &requests.UpdateAppointment{
			Date:     "2026-09-15",
			TimeSlot: "10:30 AM",
		})
		require.NoError(t, err)
		assert.Equal(t, "10:30 AM", updated.TimeSlot)
		assert.True(t, updated.Date.Equal(appointment.Date))
	})

	t.Run("updates contact fields in place", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

		appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("12:00 PM"))
		require.NoError(t, err)

		phone := "+91 98765 43210"
		notes := "prefers video call"
		updated, err := uc.UpdateAppointment(ctx, appointment.ID, &requests.UpdateAppointment{
			ClientPhone: &phone,
			Notes:       &notes,
		})
		require.NoError(t, err)
		assert.Equal(t, phone, updated.ClientPhone)
		assert.Equal(t, notes, updated.Notes)
		assert.Equal(t, "12:00 PM", updated.TimeSlot)
	})
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAppointmentRepository()
	uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

	appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("04:30 PM"))
	require.NoError(t, err)

	cancelled, err := uc.CancelAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusCancelled, cancelled.Status)
	assert.False(t, cancelled.Active)

	// Cancelling again is a no-op, not an error.
	cancelledAgain, err := uc.CancelAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusCancelled, cancelledAgain.Status)
	assert.False(t, cancelledAgain.Active)
}

func TestFindAppointmentByConfirmationCode(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAppointmentRepository()
	uc := newTestUsecase(repo, newFakeLockService(), &fakePublisher{})

	appointment, err := uc.CreateAppointment(ctx, buildCreateRequest("09:00 AM"))
	require.NoError(t, err)

	found, err := uc.FindAppointmentByConfirmationCode(ctx, appointment.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, found.ID)

	// Clients paste codes in whatever casing; lookup normalizes.
	found, err = uc.FindAppointmentByConfirmationCode(ctx, strings.ToLower(appointment.ConfirmationCode))
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, found.ID)

	_, err = uc.FindAppointmentByConfirmationCode(ctx, "LGL-000000")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
}
