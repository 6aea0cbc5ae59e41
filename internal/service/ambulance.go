package service

//go:generate mockgen -source=ambulance.go -destination=mocks/ambulance_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AmbulanceRepository определяет контракт для работы с бд машин скорой помощи
type AmbulanceRepository interface {
	Create(ctx context.Context, ambulance *models.Ambulance) error
	GetByID(ctx context.Context, id int64) (*models.Ambulance, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Ambulance, error)
	Update(ctx context.Context, ambulance *models.Ambulance) error
	Delete(ctx context.Context, id int64) error
	UpdateLocation(ctx context.Context, id int64, lat, lon float64) error
}

// AmbulanceService определяет операции над машинами скорой помощи
type AmbulanceService interface {
	CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error
	GetAmbulance(ctx context.Context, id int64) (*models.Ambulance, error)
	ListAmbulances(ctx context.Context, page, pageSize int) ([]*models.Ambulance, error)
	UpdateAmbulance(ctx context.Context, ambulance *models.Ambulance) error
	DeleteAmbulance(ctx context.Context, id int64) error
	UpdateLocation(ctx context.Context, id int64, lat, lon float64) error
}

type ambulanceService struct {
	repo      AmbulanceRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewAmbulanceService(repo AmbulanceRepository, logger *logrus.Logger, publisher webhook.Publisher) AmbulanceService {
	return &ambulanceService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateAmbulance создает запись; id назначает база
func (s *ambulanceService) CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ambulance",
		"method":  "CreateAmbulance",
	})
	log.Info("Attempting to create a new ambulance")

	if err := s.repo.Create(ctx, ambulance); err != nil {
		log.WithError(err).Error("Failed to create ambulance in repository")
		return fmt.Errorf("service: could not create ambulance: %w", err)
	}

	log.WithField("ambulance_id", ambulance.ID).Info("Ambulance created successfully")
	return nil
}

func (s *ambulanceService) GetAmbulance(ctx context.Context, id int64) (*models.Ambulance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "ambulance",
		"method":       "GetAmbulance",
		"ambulance_id": id,
	})
	log.Debug("Fetching ambulance by ID")

	ambulance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get ambulance from repository")
		return nil, fmt.Errorf("service: could not get ambulance: %w", err)
	}
	return ambulance, nil
}

func (s *ambulanceService) ListAmbulances(ctx context.Context, page, pageSize int) ([]*models.Ambulance, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "ambulance",
		"method":    "ListAmbulances",
		"page":      page,
		"page_size": pageSize,
	})

	ambulances, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list ambulances from repository")
		return nil, fmt.Errorf("service: could not list ambulances: %w", err)
	}

	log.WithField("count", len(ambulances)).Debug("Ambulances listed successfully")
	return ambulances, nil
}

func (s *ambulanceService) UpdateAmbulance(ctx context.Context, ambulance *models.Ambulance) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "ambulance",
		"method":       "UpdateAmbulance",
		"ambulance_id": ambulance.ID,
	})
	log.Info("Attempting to update ambulance")

	if err := s.repo.Update(ctx, ambulance); err != nil {
		log.WithError(err).Error("Failed to update ambulance in repository")
		return fmt.Errorf("service: could not update ambulance: %w", err)
	}

	log.Info("Ambulance updated successfully")
	return nil
}

func (s *ambulanceService) DeleteAmbulance(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "ambulance",
		"method":       "DeleteAmbulance",
		"ambulance_id": id,
	})
	log.Info("Attempting to delete ambulance")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete ambulance in repository")
		return fmt.Errorf("service: could not delete ambulance: %w", err)
	}

	log.Info("Ambulance deleted successfully")
	return nil
}

// UpdateLocation сохраняет координаты и рассылает LOCATION_UPDATE
func (s *ambulanceService) UpdateLocation(ctx context.Context, id int64, lat, lon float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "ambulance",
		"method":       "UpdateLocation",
		"ambulance_id": id,
	})

	if err := s.repo.UpdateLocation(ctx, id, lat, lon); err != nil {
		log.WithError(err).Error("Failed to update ambulance location in repository")
		return fmt.Errorf("service: could not update ambulance location: %w", err)
	}

	publishEvent(ctx, s.publisher, log, webhook.Event{
		Type:     webhook.EventLocationUpdate,
		Entity:   webhook.EntityAmbulance,
		EntityID: id,
		Data:     webhook.LocationData{Latitude: lat, Longitude: lon},
	})
	log.Debug("Ambulance location updated")
	return nil
}
