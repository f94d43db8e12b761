package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SalonBookingService/internal/service/bookings/models"
)

// Service сервис отмены бронирований и read-side запросов
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Get возвращает бронирование по ID
func (s *Service) Get(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	s.logger.Info("Get: fetching booking id=%d", bookingID)

	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Get: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Get: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return booking, nil
}

// Cancel отменяет бронирование: переводит его в статус cancelled.
// Отмена уже отменённого или несуществующего бронирования возвращает
// ErrBookingNotFound — это no-op, а не исключительная ситуация.
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if bookingID <= 0 {
		s.logger.Warn("Cancel: invalid booking id=%d", bookingID)
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found or already cancelled", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// GetPeriodBookings получает подтверждённые бронирования за период дат
// с присоединёнными именами клиента, услуги и мастера.
// Сортировка: по дате, затем по времени начала.
func (s *Service) GetPeriodBookings(ctx context.Context, req *models.GetPeriodBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPeriodBookings: period=%s to %s",
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat))

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return nil, fmt.Errorf("%w: both dates are required", ErrInvalidPeriod)
	}
	if req.DateTo.Before(req.DateFrom) {
		return nil, fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidPeriod)
	}

	rows, err := s.bookingRepo.ListForPeriod(ctx, req.DateFrom, req.DateTo)
	if err != nil {
		s.logger.Error("GetPeriodBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPeriodBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPeriodBookings: fetched %d bookings", len(rows))
	return models.FromDomainBookingList(rows), nil
}

// GetClientBookings получает подтверждённые бронирования клиента
func (s *Service) GetClientBookings(ctx context.Context, clientID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: client=%d", clientID)

	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	rows, err := s.bookingRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: fetched %d bookings for client=%d", len(rows), clientID)
	return models.FromDomainBookingList(rows), nil
}
