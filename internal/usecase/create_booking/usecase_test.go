package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/client"
	scheduleRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SalonBookingService/pkg/txmanager"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// memBookingRepo хранит бронирования в памяти. Потокобезопасность
// обеспечивает mutexTxManager, который сериализует транзакции.
type memBookingRepo struct {
	nextID    int64
	bookings  []*domain.Booking
	createErr error
}

func (m *memBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	stored := *booking
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.bookings = append(m.bookings, &stored)
	return &stored, nil
}

func (m *memBookingRepo) GetConfirmedByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.MasterID == masterID && b.Date.Equal(date) && b.IsConfirmed() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *memBookingRepo) cancel(id int64) {
	for _, b := range m.bookings {
		if b.ID == id {
			b.Status = domain.StatusCancelled
		}
	}
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

type fakeClientRepo struct {
	client *domain.Client
	err    error
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

// mutexTxManager выполняет транзакции строго последовательно,
// имитируя сериализуемую изоляцию
type mutexTxManager struct {
	mu sync.Mutex
}

func (m *mutexTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// abortingTxManager выполняет fn успешно, но имитирует прерывание
// сериализуемой транзакции на коммите: PostgreSQL обнаруживает конфликт
// с конкурентной транзакцией только при фиксации
type abortingTxManager struct{}

func (abortingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return fmt.Errorf("%w: %w", txmanager.ErrCommitTx, &pq.Error{Code: pqSerializationFailure})
}

func testDate() time.Time {
	return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(bookings *memBookingRepo) *UseCase {
	return NewUseCase(
		bookings,
		&fakeScheduleRepo{window: &domain.WorkWindow{MasterID: 1, StartTime: "10:00", EndTime: "19:00"}},
		&fakeCatalogRepo{
			service: &domain.Service{ID: 1, Name: "Женская стрижка", DurationMinutes: 60, Price: 1500},
			master:  &domain.Master{ID: 1, Name: "Анна", Specialization: "Парикмахер"},
		},
		&fakeClientRepo{client: &domain.Client{ID: 1, Name: "Ольга", Phone: "+79990001122"}},
		&mutexTxManager{},
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		ClientID:  1,
		ServiceID: 1,
		MasterID:  1,
		Date:      testDate(),
		StartTime: "11:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	store := &memBookingRepo{}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "11:00", resp.StartTime.String())
	assert.Equal(t, "12:00", resp.EndTime.String(), "end time is derived from service duration")
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.Len(t, store.bookings, 1)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	store := &memBookingRepo{}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Точно тот же слот
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Пересекающийся слот
	req := validRequest()
	req.StartTime = "11:45"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Соседний слот, касающийся по границе, проходит
	req = validRequest()
	req.StartTime = "12:00"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	require.Len(t, store.bookings, 2)
}

func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	store := &memBookingRepo{}
	uc := newTestUseCase(store)

	const workers = 20

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent request must win the slot")
	assert.Equal(t, workers-1, conflicted)
	assert.Len(t, store.bookings, 1)
}

func TestUseCase_Execute_SerializationAbortAtCommit(t *testing.T) {
	// На пустом дне FOR UPDATE нечего блокировать: обе конкурентные
	// транзакции видят ноль строк, обе вставляют, и проигравшая
	// прерывается только на коммите (SQLSTATE 40001). Это проигрыш
	// гонки за слот, а не сбой хранилища.
	uc := NewUseCase(
		&memBookingRepo{},
		&fakeScheduleRepo{window: &domain.WorkWindow{MasterID: 1, StartTime: "10:00", EndTime: "19:00"}},
		&fakeCatalogRepo{
			service: &domain.Service{ID: 1, DurationMinutes: 60},
			master:  &domain.Master{ID: 1},
		},
		&fakeClientRepo{client: &domain.Client{ID: 1}},
		abortingTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_SerializationAbortAtInsert(t *testing.T) {
	store := &memBookingRepo{createErr: bookingRepo.ErrSerializationConflict}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, store.bookings)
}

func TestUseCase_Execute_CancelFreesSlot(t *testing.T) {
	store := &memBookingRepo{}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	store.cancel(resp.ID)

	again, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "cancelled booking must not block the slot")
	assert.NotEqual(t, resp.ID, again.ID)
}

func TestUseCase_Execute_InvalidSlotPlacement(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
	}{
		{name: "not aligned to slot grid", start: "11:10"},
		{name: "before window opens", start: "09:00"},
		{name: "service does not fit before closing", start: "18:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memBookingRepo{}
			uc := newTestUseCase(store)

			req := validRequest()
			req.StartTime = tt.start
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
			assert.Empty(t, store.bookings, "rejected request must not insert a booking")
		})
	}
}

func TestUseCase_Execute_MasterNotWorking(t *testing.T) {
	uc := NewUseCase(
		&memBookingRepo{},
		&fakeScheduleRepo{err: scheduleRepo.ErrWindowNotFound},
		&fakeCatalogRepo{
			service: &domain.Service{ID: 1, DurationMinutes: 60},
			master:  &domain.Master{ID: 1},
		},
		&fakeClientRepo{client: &domain.Client{ID: 1}},
		&mutexTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrMasterNotWorking)
}

func TestUseCase_Execute_NotFoundEntities(t *testing.T) {
	t.Run("client not found", func(t *testing.T) {
		uc := NewUseCase(
			&memBookingRepo{},
			&fakeScheduleRepo{},
			&fakeCatalogRepo{},
			&fakeClientRepo{err: clientRepo.ErrClientNotFound},
			&mutexTxManager{},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		uc := NewUseCase(
			&memBookingRepo{},
			&fakeScheduleRepo{},
			&fakeCatalogRepo{serviceErr: catalogRepo.ErrServiceNotFound},
			&fakeClientRepo{client: &domain.Client{ID: 1}},
			&mutexTxManager{},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("master not found", func(t *testing.T) {
		uc := NewUseCase(
			&memBookingRepo{},
			&fakeScheduleRepo{},
			&fakeCatalogRepo{
				service:   &domain.Service{ID: 1, DurationMinutes: 60},
				masterErr: catalogRepo.ErrMasterNotFound,
			},
			&fakeClientRepo{client: &domain.Client{ID: 1}},
			&mutexTxManager{},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrMasterNotFound)
	})
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&memBookingRepo{})

	req := validRequest()
	req.ClientID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = ""
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
