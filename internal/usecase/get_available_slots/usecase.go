package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/schedule"
)

// UseCase use case получения доступных слотов для записи
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Длительность слота всегда берётся из услуги, клиент её не передаёт.
// Отсутствие рабочего окна на дату — не ошибка: мастер в этот день
// не работает, возвращается пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%d, service=%d, date=%s",
		req.MasterID, req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if _, err := uc.catalogRepo.GetMasterByID(ctx, req.MasterID); err != nil {
		if errors.Is(err, catalogRepo.ErrMasterNotFound) {
			uc.logger.Warn("GetAvailableSlots: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	window, err := uc.scheduleRepo.GetByMasterAndDate(ctx, req.MasterID, req.Date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWindowNotFound) {
			uc.logger.Info("GetAvailableSlots: master=%d has no work window on %s",
				req.MasterID, req.Date.Format(domain.DateFormat))
			return &Response{
				MasterID:        req.MasterID,
				ServiceID:       req.ServiceID,
				Date:            req.Date,
				DurationMinutes: service.DurationMinutes,
				Slots:           []domain.Slot{},
			}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get work window: %v", err)
		return nil, fmt.Errorf("%w: failed to get work window: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetConfirmedByMasterAndDate(ctx, req.MasterID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots, err := generateSlots(window, service.DurationMinutes, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for master=%d, service=%d, date=%s",
		len(slots), req.MasterID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		MasterID:        req.MasterID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
