// Package seed заполняет справочники стартовыми данными:
// стандартный набор услуг, мастера и расписание на две недели вперёд.
// Все операции идемпотентны, повторный запуск сервиса данные не дублирует.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// scheduleDays горизонт генерации стандартного расписания
const scheduleDays = 14

// Стандартное рабочее окно мастера
const (
	defaultStartTime = "10:00"
	defaultEndTime   = "19:00"
)

// CatalogRepository интерфейс репозитория справочных данных
type CatalogRepository interface {
	SeedService(ctx context.Context, service *domain.Service) error
	SeedMaster(ctx context.Context, master *domain.Master) error
	ListMasters(ctx context.Context) ([]*domain.Master, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	Upsert(ctx context.Context, window *domain.WorkWindow) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// defaultServices стандартный набор услуг салона
var defaultServices = []domain.Service{
	{Name: "Женская стрижка", DurationMinutes: 60, Price: 1500},
	{Name: "Мужская стрижка", DurationMinutes: 30, Price: 800},
	{Name: "Окрашивание", DurationMinutes: 120, Price: 3000},
	{Name: "Маникюр", DurationMinutes: 90, Price: 2000},
	{Name: "Педикюр", DurationMinutes: 90, Price: 2500},
}

// defaultMasters стандартный список мастеров
var defaultMasters = []domain.Master{
	{Name: "Анна", Specialization: "Парикмахер"},
	{Name: "Елена", Specialization: "Колорист"},
	{Name: "Мария", Specialization: "Мастер маникюра"},
	{Name: "Ирина", Specialization: "Мастер педикюра"},
}

// Run заполняет справочники и создает расписание мастеров
// на scheduleDays дней вперёд (только будние дни, 10:00–19:00)
func Run(ctx context.Context, catalogRepo CatalogRepository, scheduleRepo ScheduleRepository, log Logger) error {
	for i := range defaultServices {
		if err := catalogRepo.SeedService(ctx, &defaultServices[i]); err != nil {
			return fmt.Errorf("seed: service %q: %w", defaultServices[i].Name, err)
		}
	}

	for i := range defaultMasters {
		if err := catalogRepo.SeedMaster(ctx, &defaultMasters[i]); err != nil {
			return fmt.Errorf("seed: master %q: %w", defaultMasters[i].Name, err)
		}
	}

	masters, err := catalogRepo.ListMasters(ctx)
	if err != nil {
		return fmt.Errorf("seed: list masters: %w", err)
	}

	today := time.Now()
	windows := 0
	for _, master := range masters {
		for day := 0; day < scheduleDays; day++ {
			date := today.AddDate(0, 0, day)
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				continue
			}

			window := &domain.WorkWindow{
				MasterID:  master.ID,
				Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
				StartTime: defaultStartTime,
				EndTime:   defaultEndTime,
			}
			if err := scheduleRepo.Upsert(ctx, window); err != nil {
				return fmt.Errorf("seed: schedule for master=%d date=%s: %w",
					master.ID, date.Format(domain.DateFormat), err)
			}
			windows++
		}
	}

	log.Info("Seed: %d services, %d masters, %d schedule windows ensured",
		len(defaultServices), len(defaultMasters), windows)
	return nil
}
