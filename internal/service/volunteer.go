package service

//go:generate mockgen -source=volunteer.go -destination=mocks/volunteer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id int64) (*models.Volunteer, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Volunteer, error)
	Update(ctx context.Context, volunteer *models.Volunteer) error
	Delete(ctx context.Context, id int64) error
	UpdateLocation(ctx context.Context, id int64, lat, lon float64) error
}

type VolunteerService interface {
	CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) error
	GetVolunteer(ctx context.Context, id int64) (*models.Volunteer, error)
	ListVolunteers(ctx context.Context, page, pageSize int) ([]*models.Volunteer, error)
	UpdateVolunteer(ctx context.Context, volunteer *models.Volunteer) error
	DeleteVolunteer(ctx context.Context, id int64) error
	UpdateLocation(ctx context.Context, id int64, lat, lon float64) error
}

type volunteerService struct {
	repo      VolunteerRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewVolunteerService(repo VolunteerRepository, logger *logrus.Logger, publisher webhook.Publisher) VolunteerService {
	return &volunteerService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

func (s *volunteerService) CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "CreateVolunteer",
	})

	if err := s.repo.Create(ctx, volunteer); err != nil {
		log.WithError(err).Error("Failed to create volunteer in repository")
		return fmt.Errorf("service: could not create volunteer: %w", err)
	}

	log.WithField("volunteer_id", volunteer.ID).Info("Volunteer created successfully")
	return nil
}

func (s *volunteerService) GetVolunteer(ctx context.Context, id int64) (*models.Volunteer, error) {
	volunteer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("volunteer_id", id).Warn("Failed to get volunteer from repository")
		return nil, fmt.Errorf("service: could not get volunteer: %w", err)
	}
	return volunteer, nil
}

func (s *volunteerService) ListVolunteers(ctx context.Context, page, pageSize int) ([]*models.Volunteer, error) {
	page, pageSize = normalizePage(page, pageSize)

	volunteers, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list volunteers from repository")
		return nil, fmt.Errorf("service: could not list volunteers: %w", err)
	}
	return volunteers, nil
}

func (s *volunteerService) UpdateVolunteer(ctx context.Context, volunteer *models.Volunteer) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "UpdateVolunteer",
		"volunteer_id": volunteer.ID,
	})

	if err := s.repo.Update(ctx, volunteer); err != nil {
		log.WithError(err).Error("Failed to update volunteer in repository")
		return fmt.Errorf("service: could not update volunteer: %w", err)
	}

	log.Info("Volunteer updated successfully")
	return nil
}

func (s *volunteerService) DeleteVolunteer(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "DeleteVolunteer",
		"volunteer_id": id,
	})

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete volunteer in repository")
		return fmt.Errorf("service: could not delete volunteer: %w", err)
	}

	log.Info("Volunteer deleted successfully")
	return nil
}

func (s *volunteerService) UpdateLocation(ctx context.Context, id int64, lat, lon float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "UpdateLocation",
		"volunteer_id": id,
	})

	if err := s.repo.UpdateLocation(ctx, id, lat, lon); err != nil {
		log.WithError(err).Error("Failed to update volunteer location in repository")
		return fmt.Errorf("service: could not update volunteer location: %w", err)
	}

	publishEvent(ctx, s.publisher, log, webhook.Event{
		Type:     webhook.EventLocationUpdate,
		Entity:   webhook.EntityVolunteer,
		EntityID: id,
		Data:     webhook.LocationData{Latitude: lat, Longitude: lon},
	})
	return nil
}
