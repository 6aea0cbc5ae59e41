package service

//go:generate mockgen -source=emergency.go -destination=mocks/emergency_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

// EmergencyRepository определяет контракт для работы с бд вызовов и их кешем
type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) error
	GetByID(ctx context.Context, id int64) (*models.Emergency, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Emergency, error)
	Update(ctx context.Context, emergency *models.Emergency) error
	Delete(ctx context.Context, id int64) error
	// UpdateStatus меняет статус; ambulanceID == nil оставляет текущую машину
	UpdateStatus(ctx context.Context, id int64, status string, ambulanceID *int64) (*models.Emergency, error)
	// Assign записывает статус и машину как есть, nil очищает ambulance_id
	Assign(ctx context.Context, id int64, status string, ambulanceID *int64) (*models.Emergency, error)
	ListByAmbulance(ctx context.Context, ambulanceID int64) ([]*models.Emergency, error)

	GetEmergencyFromCache(ctx context.Context, id int64) (*models.Emergency, error)
	SetEmergencyCache(ctx context.Context, emergency *models.Emergency) error
	InvalidateEmergencyCache(ctx context.Context, id int64) error
}

// EmergencyService определяет операции над вызовами
type EmergencyService interface {
	CreateEmergency(ctx context.Context, emergency *models.Emergency) error
	GetEmergency(ctx context.Context, id int64) (*models.Emergency, error)
	ListEmergencies(ctx context.Context, page, pageSize int) ([]*models.Emergency, error)
	UpdateEmergency(ctx context.Context, emergency *models.Emergency) error
	DeleteEmergency(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status string, ambulanceID *int64) (*models.Emergency, error)
	AcceptEmergency(ctx context.Context, id int64, ambulanceID *int64) (*models.Emergency, error)
	RejectEmergency(ctx context.Context, id int64) (*models.Emergency, error)
	ListAssigned(ctx context.Context, ambulanceID int64) ([]*models.Emergency, error)
}

type emergencyService struct {
	repo      EmergencyRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewEmergencyService(repo EmergencyRepository, logger *logrus.Logger, publisher webhook.Publisher) EmergencyService {
	return &emergencyService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

func (s *emergencyService) entry(method string, id int64) *logrus.Entry {
	fields := logrus.Fields{
		"service": "emergency",
		"method":  method,
	}
	if id != 0 {
		fields["emergency_id"] = id
	}
	return s.logger.WithFields(fields)
}

// CreateEmergency сохраняет вызов и рассылает NEW_EMERGENCY.
// Пустой статус заменяется на pending, ссылки на машину и больницу не проверяются.
func (s *emergencyService) CreateEmergency(ctx context.Context, emergency *models.Emergency) error {
	log := s.entry("CreateEmergency", 0).WithField("severity", emergency.Severity)
	log.Info("Attempting to create a new emergency")

	if emergency.Status == "" {
		emergency.Status = models.EmergencyStatusPending
	}
	if err := s.repo.Create(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to create emergency in repository")
		return fmt.Errorf("service: could not create emergency: %w", err)
	}

	publishEvent(ctx, s.publisher, log, webhook.Event{
		Type:     webhook.EventNewEmergency,
		Entity:   webhook.EntityEmergency,
		EntityID: emergency.ID,
		Data:     emergency,
	})
	log.WithField("emergency_id", emergency.ID).Info("Emergency created successfully")
	return nil
}

// GetEmergency читает вызов сначала из кеша, затем из бд
func (s *emergencyService) GetEmergency(ctx context.Context, id int64) (*models.Emergency, error) {
	log := s.entry("GetEmergency", id)

	cached, err := s.repo.GetEmergencyFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read emergency from cache")
	}
	if cached != nil {
		log.Debug("Emergency served from cache")
		return cached, nil
	}

	emergency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency from repository")
		return nil, fmt.Errorf("service: could not get emergency: %w", err)
	}

	if err := s.repo.SetEmergencyCache(ctx, emergency); err != nil {
		log.WithError(err).Warn("Failed to cache emergency")
	}
	return emergency, nil
}

// ListEmergencies возвращает вызовы, новые первыми
func (s *emergencyService) ListEmergencies(ctx context.Context, page, pageSize int) ([]*models.Emergency, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.entry("ListEmergencies", 0).WithFields(logrus.Fields{
		"page":      page,
		"page_size": pageSize,
	})

	emergencies, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list emergencies from repository")
		return nil, fmt.Errorf("service: could not list emergencies: %w", err)
	}

	log.WithField("count", len(emergencies)).Debug("Emergencies listed successfully")
	return emergencies, nil
}

func (s *emergencyService) UpdateEmergency(ctx context.Context, emergency *models.Emergency) error {
	log := s.entry("UpdateEmergency", emergency.ID)
	log.Info("Attempting to update emergency")

	if err := s.repo.Update(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to update emergency in repository")
		return fmt.Errorf("service: could not update emergency: %w", err)
	}
	s.invalidate(ctx, log, emergency.ID)

	log.Info("Emergency updated successfully")
	return nil
}

func (s *emergencyService) DeleteEmergency(ctx context.Context, id int64) error {
	log := s.entry("DeleteEmergency", id)
	log.Info("Attempting to delete emergency")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete emergency in repository")
		return fmt.Errorf("service: could not delete emergency: %w", err)
	}
	s.invalidate(ctx, log, id)

	log.Info("Emergency deleted successfully")
	return nil
}

// UpdateStatus записывает статус и рассылает STATUS_UPDATE.
// При arrived_at_scene больница дополнительно получает NEW_EMERGENCY.
func (s *emergencyService) UpdateStatus(ctx context.Context, id int64, status string, ambulanceID *int64) (*models.Emergency, error) {
	log := s.entry("UpdateStatus", id).WithField("status", status)

	emergency, err := s.repo.UpdateStatus(ctx, id, status, ambulanceID)
	if err != nil {
		log.WithError(err).Error("Failed to update emergency status in repository")
		return nil, fmt.Errorf("service: could not update emergency status: %w", err)
	}
	s.invalidate(ctx, log, id)
	s.publishStatus(ctx, log, emergency)

	if status == models.EmergencyStatusArrivedAtScene {
		publishEvent(ctx, s.publisher, log, webhook.Event{
			Type:     webhook.EventNewEmergency,
			Entity:   webhook.EntityEmergency,
			EntityID: emergency.ID,
			Data:     emergency,
		})
	}

	log.Info("Emergency status updated")
	return emergency, nil
}

// AcceptEmergency закрепляет машину за вызовом со статусом accepted
func (s *emergencyService) AcceptEmergency(ctx context.Context, id int64, ambulanceID *int64) (*models.Emergency, error) {
	log := s.entry("AcceptEmergency", id).WithField("ambulance_id", ambulanceID)

	emergency, err := s.repo.Assign(ctx, id, models.EmergencyStatusAccepted, ambulanceID)
	if err != nil {
		log.WithError(err).Error("Failed to accept emergency in repository")
		return nil, fmt.Errorf("service: could not accept emergency: %w", err)
	}
	s.invalidate(ctx, log, id)
	s.publishStatus(ctx, log, emergency)

	log.Info("Emergency accepted")
	return emergency, nil
}

// RejectEmergency возвращает вызов в pending и снимает машину
func (s *emergencyService) RejectEmergency(ctx context.Context, id int64) (*models.Emergency, error) {
	log := s.entry("RejectEmergency", id)

	emergency, err := s.repo.Assign(ctx, id, models.EmergencyStatusPending, nil)
	if err != nil {
		log.WithError(err).Error("Failed to reject emergency in repository")
		return nil, fmt.Errorf("service: could not reject emergency: %w", err)
	}
	s.invalidate(ctx, log, id)
	s.publishStatus(ctx, log, emergency)

	log.Info("Emergency rejected")
	return emergency, nil
}

// ListAssigned возвращает незавершенные вызовы машины
func (s *emergencyService) ListAssigned(ctx context.Context, ambulanceID int64) ([]*models.Emergency, error) {
	log := s.entry("ListAssigned", 0).WithField("ambulance_id", ambulanceID)

	emergencies, err := s.repo.ListByAmbulance(ctx, ambulanceID)
	if err != nil {
		log.WithError(err).Error("Failed to list assigned emergencies from repository")
		return nil, fmt.Errorf("service: could not list assigned emergencies: %w", err)
	}
	return emergencies, nil
}

func (s *emergencyService) invalidate(ctx context.Context, log *logrus.Entry, id int64) {
	if err := s.repo.InvalidateEmergencyCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate emergency cache")
	}
}

func (s *emergencyService) publishStatus(ctx context.Context, log *logrus.Entry, emergency *models.Emergency) {
	publishEvent(ctx, s.publisher, log, webhook.Event{
		Type:     webhook.EventStatusUpdate,
		Entity:   webhook.EntityEmergency,
		EntityID: emergency.ID,
		Data: webhook.StatusData{
			Status:      emergency.Status,
			AmbulanceID: emergency.AmbulanceID,
			HospitalID:  emergency.HospitalID,
		},
	})
}
