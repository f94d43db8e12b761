package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/client"
	scheduleRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/schedule"
)

// pqSerializationFailure код ошибки PostgreSQL "serialization_failure"
const pqSerializationFailure = "40001"

// isSerializationConflict возвращает true, если транзакция проиграла гонку
// сериализации: репозиторий вернул ErrSerializationConflict из тела
// транзакции, либо PostgreSQL прервал её на коммите (SQLSTATE 40001).
// Пустой день здесь типичен: обе транзакции читают ноль строк (FOR UPDATE
// нечего блокировать), обе вставляют, и проигравшая падает только на коммите.
func isSerializationConflict(err error) bool {
	if errors.Is(err, bookingRepo.ErrSerializationConflict) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqSerializationFailure
}

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	clientRepo   ClientRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		clientRepo:   clientRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции: список подтверждённых бронирований читается с блокировкой
// FOR UPDATE, поэтому из N конкурентных запросов на пересекающиеся
// интервалы зафиксируется ровно один, остальные получат ErrSlotTaken.
// Время окончания всегда вычисляется из длительности услуги.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, service=%d, master=%d, date=%s, time=%s",
		req.ClientID, req.ServiceID, req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Получаем услугу (длительность определяет конец интервала)
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем существование мастера
	if _, err := uc.catalogRepo.GetMasterByID(ctx, req.MasterID); err != nil {
		if errors.Is(err, catalogRepo.ErrMasterNotFound) {
			uc.logger.Warn("CreateBooking: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 5. Вычисляем конец интервала из длительности услуги
	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	var result *domain.Booking

	// 6. Повторная валидация и вставка — одна атомарная единица
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Рабочее окно мастера на дату
		window, err := uc.scheduleRepo.GetByMasterAndDate(txCtx, req.MasterID, req.Date)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrWindowNotFound) {
				return ErrMasterNotWorking
			}
			return fmt.Errorf("%w: failed to get work window: %v", ErrInternal, err)
		}

		// 6.2. Интервал внутри окна и выровнен по сетке слотов
		if err := validateSlotPlacement(window, req.StartTime, endTime); err != nil {
			return err
		}

		// 6.3. Текущие подтверждённые бронирования с блокировкой FOR UPDATE
		bookings, err := uc.bookingRepo.GetConfirmedByMasterAndDate(txCtx, req.MasterID, req.Date)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSerializationConflict) {
				return err
			}
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.4. Проверка пересечений по актуальному состоянию
		if conflict := findOverlapping(req.StartTime, endTime, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s-%s conflicts with booking id=%d (%s-%s)",
				req.StartTime, endTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotTaken
		}

		// 6.5. Вставка подтверждённого бронирования
		booking := &domain.Booking{
			ClientID:  req.ClientID,
			ServiceID: req.ServiceID,
			MasterID:  req.MasterID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   endTime,
			Status:    domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSerializationConflict) {
				return err
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrMasterNotWorking) ||
			errors.Is(err, ErrInvalidTimeSlot) || errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		// Прерывание сериализации — проигрыш гонки за слот, а не сбой
		// хранилища: клиент должен перечитать слоты и повторить запрос
		if isSerializationConflict(err) {
			uc.logger.Warn("CreateBooking: lost serialization race: master=%d, date=%s, start=%s: %v",
				req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime, err)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		ServiceID: result.ServiceID,
		MasterID:  result.MasterID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}
