package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	clientRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/client"
	"github.com/m04kA/SalonBookingService/internal/service/directory/models"
)

// Service сервис справочников: клиенты, услуги, мастера
type Service struct {
	clientRepo  ClientRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(clientRepo ClientRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		clientRepo:  clientRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ResolveOrCreateClient находит клиента по телефону или telegram_id,
// либо создает нового и возвращает его ID.
//
// Семантика "first write wins": если клиент уже существует, имя и телефон
// из нового запроса отбрасываются, запись не обновляется. Проигравший
// гонку создания (нарушение уникальности телефона) повторяет поиск и
// возвращает ID победителя — ошибка уникальности наружу не выходит.
func (s *Service) ResolveOrCreateClient(ctx context.Context, req *models.ResolveClientRequest) (int64, error) {
	s.logger.Info("ResolveOrCreateClient: phone=%s", req.Phone)

	if req.Name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return 0, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	// 1. Поиск по телефону
	existing, err := s.clientRepo.GetByPhone(ctx, req.Phone)
	if err == nil {
		s.logger.Info("ResolveOrCreateClient: found existing client id=%d by phone", existing.ID)
		return existing.ID, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Error("ResolveOrCreateClient: lookup by phone failed: %v", err)
		return 0, fmt.Errorf("%w: lookup by phone: %v", ErrInternal, err)
	}

	// 2. Поиск по telegram_id, если он передан
	if req.TelegramID != nil {
		existing, err = s.clientRepo.GetByTelegramID(ctx, *req.TelegramID)
		if err == nil {
			s.logger.Info("ResolveOrCreateClient: found existing client id=%d by telegram_id", existing.ID)
			return existing.ID, nil
		}
		if !errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Error("ResolveOrCreateClient: lookup by telegram_id failed: %v", err)
			return 0, fmt.Errorf("%w: lookup by telegram_id: %v", ErrInternal, err)
		}
	}

	// 3. Создание нового клиента
	created, err := s.clientRepo.Create(ctx, &domain.Client{
		Name:       req.Name,
		Phone:      req.Phone,
		TelegramID: req.TelegramID,
	})
	if err == nil {
		s.logger.Info("ResolveOrCreateClient: created client id=%d", created.ID)
		return created.ID, nil
	}

	// 4. Проигрыш гонки создания: конкурент успел вставить ту же запись.
	// Повторяем поиск и возвращаем ID победителя.
	if errors.Is(err, clientRepo.ErrClientAlreadyExists) {
		s.logger.Warn("ResolveOrCreateClient: lost create race for phone=%s, falling back to lookup", req.Phone)
		return s.lookupAfterLostRace(ctx, req)
	}

	s.logger.Error("ResolveOrCreateClient: create failed: %v", err)
	return 0, fmt.Errorf("%w: create client: %v", ErrInternal, err)
}

// lookupAfterLostRace повторяет поиск клиента после проигрыша гонки создания
func (s *Service) lookupAfterLostRace(ctx context.Context, req *models.ResolveClientRequest) (int64, error) {
	existing, err := s.clientRepo.GetByPhone(ctx, req.Phone)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		return 0, fmt.Errorf("%w: post-race lookup by phone: %v", ErrInternal, err)
	}

	// Уникальность могла нарушиться по telegram_id, а не по телефону
	if req.TelegramID != nil {
		existing, err = s.clientRepo.GetByTelegramID(ctx, *req.TelegramID)
		if err == nil {
			return existing.ID, nil
		}
	}

	return 0, fmt.Errorf("%w: client exists but could not be found after lost race", ErrInternal)
}

// ListServices возвращает снимок справочника услуг
func (s *Service) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(services), nil
}

// ListMasters возвращает снимок справочника мастеров.
// Фильтрации по услуге нет: каждый мастер считается выполняющим любую услугу.
func (s *Service) ListMasters(ctx context.Context) ([]models.MasterResponse, error) {
	masters, err := s.catalogRepo.ListMasters(ctx)
	if err != nil {
		s.logger.Error("ListMasters: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMasters - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainMasters(masters), nil
}
