package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/schedule"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetConfirmedByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeScheduleRepo struct {
	window *domain.WorkWindow
	err    error
}

func (f *fakeScheduleRepo) GetByMasterAndDate(ctx context.Context, masterID int64, date time.Time) (*domain.WorkWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.window, nil
}

type fakeCatalogRepo struct {
	service    *domain.Service
	serviceErr error
	master     *domain.Master
	masterErr  error
}

func (f *fakeCatalogRepo) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return f.service, nil
}

func (f *fakeCatalogRepo) GetMasterByID(ctx context.Context, id int64) (*domain.Master, error) {
	if f.masterErr != nil {
		return nil, f.masterErr
	}
	return f.master, nil
}

func testDate() time.Time {
	return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute(t *testing.T) {
	haircut := &domain.Service{ID: 1, Name: "Женская стрижка", DurationMinutes: 60, Price: 1500}
	anna := &domain.Master{ID: 1, Name: "Анна", Specialization: "Парикмахер"}

	t.Run("open day returns full slot grid", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookingRepo{},
			&fakeScheduleRepo{window: &domain.WorkWindow{MasterID: 1, StartTime: "10:00", EndTime: "19:00"}},
			&fakeCatalogRepo{service: haircut, master: anna},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, ServiceID: 1, Date: testDate()})
		require.NoError(t, err)

		assert.Equal(t, 60, resp.DurationMinutes)
		require.Len(t, resp.Slots, 33)
		assert.Equal(t, domain.Slot{StartTime: "10:00", EndTime: "11:00"}, resp.Slots[0])
		assert.Equal(t, domain.Slot{StartTime: "18:00", EndTime: "19:00"}, resp.Slots[32])
	})

	t.Run("booked interval excluded", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookingRepo{bookings: []*domain.Booking{
				{StartTime: "11:00", EndTime: "12:00", Status: domain.StatusConfirmed},
			}},
			&fakeScheduleRepo{window: &domain.WorkWindow{MasterID: 1, StartTime: "10:00", EndTime: "19:00"}},
			&fakeCatalogRepo{service: haircut, master: anna},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, ServiceID: 1, Date: testDate()})
		require.NoError(t, err)

		for _, s := range resp.Slots {
			assert.NotEqual(t, "10:15", s.StartTime.String())
			assert.NotEqual(t, "11:00", s.StartTime.String())
		}
	})

	t.Run("no work window returns empty slots", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookingRepo{},
			&fakeScheduleRepo{err: scheduleRepo.ErrWindowNotFound},
			&fakeCatalogRepo{service: haircut, master: anna},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, ServiceID: 1, Date: testDate()})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, 60, resp.DurationMinutes)
	})

	t.Run("unknown service", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookingRepo{},
			&fakeScheduleRepo{},
			&fakeCatalogRepo{serviceErr: catalogRepo.ErrServiceNotFound},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{MasterID: 1, ServiceID: 99, Date: testDate()})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown master", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookingRepo{},
			&fakeScheduleRepo{},
			&fakeCatalogRepo{service: haircut, masterErr: catalogRepo.ErrMasterNotFound},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{MasterID: 99, ServiceID: 1, Date: testDate()})
		assert.ErrorIs(t, err, ErrMasterNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{MasterID: 0, ServiceID: 1, Date: testDate()})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{MasterID: 1, ServiceID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repeated calls give identical result", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookingRepo{bookings: []*domain.Booking{
				{StartTime: "13:00", EndTime: "14:30", Status: domain.StatusConfirmed},
			}},
			&fakeScheduleRepo{window: &domain.WorkWindow{MasterID: 1, StartTime: "10:00", EndTime: "19:00"}},
			&fakeCatalogRepo{service: haircut, master: anna},
			nopLogger{},
		)

		req := &Request{MasterID: 1, ServiceID: 1, Date: testDate()}
		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, first.Slots, second.Slots)
	})
}
