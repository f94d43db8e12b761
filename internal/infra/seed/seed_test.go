package seed

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}

type fakeCatalogRepo struct {
	services []*domain.Service
	masters  []*domain.Master
}

func (f *fakeCatalogRepo) SeedService(ctx context.Context, service *domain.Service) error {
	for _, s := range f.services {
		if s.Name == service.Name {
			return nil
		}
	}
	stored := *service
	stored.ID = int64(len(f.services) + 1)
	f.services = append(f.services, &stored)
	return nil
}

func (f *fakeCatalogRepo) SeedMaster(ctx context.Context, master *domain.Master) error {
	for _, m := range f.masters {
		if m.Name == master.Name {
			return nil
		}
	}
	stored := *master
	stored.ID = int64(len(f.masters) + 1)
	f.masters = append(f.masters, &stored)
	return nil
}

func (f *fakeCatalogRepo) ListMasters(ctx context.Context) ([]*domain.Master, error) {
	return f.masters, nil
}

type fakeScheduleRepo struct {
	windows map[string]*domain.WorkWindow
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, window *domain.WorkWindow) error {
	if f.windows == nil {
		f.windows = make(map[string]*domain.WorkWindow)
	}
	key := fmt.Sprintf("%d/%s", window.MasterID, window.Date.Format(domain.DateFormat))
	f.windows[key] = window
	return nil
}

func TestRun(t *testing.T) {
	catalog := &fakeCatalogRepo{}
	schedule := &fakeScheduleRepo{}

	require.NoError(t, Run(context.Background(), catalog, schedule, nopLogger{}))

	assert.Len(t, catalog.services, 5)
	assert.Len(t, catalog.masters, 4)

	// Только будние дни в горизонте двух недель
	for _, w := range schedule.windows {
		weekday := w.Date.Weekday()
		assert.NotEqual(t, time.Saturday, weekday)
		assert.NotEqual(t, time.Sunday, weekday)
		assert.Equal(t, "10:00", w.StartTime.String())
		assert.Equal(t, "19:00", w.EndTime.String())
	}
	assert.NotEmpty(t, schedule.windows)
}

func TestRun_Idempotent(t *testing.T) {
	catalog := &fakeCatalogRepo{}
	schedule := &fakeScheduleRepo{}

	require.NoError(t, Run(context.Background(), catalog, schedule, nopLogger{}))
	firstWindows := len(schedule.windows)

	require.NoError(t, Run(context.Background(), catalog, schedule, nopLogger{}))

	assert.Len(t, catalog.services, 5, "services must not be duplicated")
	assert.Len(t, catalog.masters, 4, "masters must not be duplicated")
	assert.Len(t, schedule.windows, firstWindows, "schedule windows must not be duplicated")
}
