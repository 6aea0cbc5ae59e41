package service

//go:generate mockgen -source=hospital.go -destination=mocks/hospital_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

// HospitalRepository определяет контракт для работы с бд больниц
type HospitalRepository interface {
	Create(ctx context.Context, hospital *models.Hospital) error
	GetByID(ctx context.Context, id int64) (*models.Hospital, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Hospital, error)
	Update(ctx context.Context, hospital *models.Hospital) error
	Delete(ctx context.Context, id int64) error
	UpdateBeds(ctx context.Context, id int64, icuAvailable, bedsAvailable int) error
}

// HospitalService определяет операции над больницами
type HospitalService interface {
	CreateHospital(ctx context.Context, hospital *models.Hospital) error
	GetHospital(ctx context.Context, id int64) (*models.Hospital, error)
	ListHospitals(ctx context.Context, page, pageSize int) ([]*models.Hospital, error)
	UpdateHospital(ctx context.Context, hospital *models.Hospital) error
	DeleteHospital(ctx context.Context, id int64) error
	UpdateBeds(ctx context.Context, id int64, icuAvailable, bedsAvailable int) error
}

type hospitalService struct {
	repo      HospitalRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewHospitalService(repo HospitalRepository, logger *logrus.Logger, publisher webhook.Publisher) HospitalService {
	return &hospitalService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateHospital создает больницу
func (s *hospitalService) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hospital",
		"method":  "CreateHospital",
		"name":    hospital.Name,
	})
	log.Info("Attempting to create a new hospital")

	if err := s.repo.Create(ctx, hospital); err != nil {
		log.WithError(err).Error("Failed to create hospital in repository")
		return fmt.Errorf("service: could not create hospital: %w", err)
	}

	log.WithField("hospital_id", hospital.ID).Info("Hospital created successfully")
	return nil
}

// GetHospital получает больницу по ID
func (s *hospitalService) GetHospital(ctx context.Context, id int64) (*models.Hospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "hospital",
		"method":      "GetHospital",
		"hospital_id": id,
	})

	hospital, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get hospital from repository")
		return nil, fmt.Errorf("service: could not get hospital: %w", err)
	}
	return hospital, nil
}

// ListHospitals возвращает список больниц с пагинацией
func (s *hospitalService) ListHospitals(ctx context.Context, page, pageSize int) ([]*models.Hospital, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hospital",
		"method":    "ListHospitals",
		"page":      page,
		"page_size": pageSize,
	})

	hospitals, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list hospitals from repository")
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}

	log.WithField("count", len(hospitals)).Debug("Hospitals listed successfully")
	return hospitals, nil
}

// UpdateHospital перезаписывает все поля больницы
func (s *hospitalService) UpdateHospital(ctx context.Context, hospital *models.Hospital) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "hospital",
		"method":      "UpdateHospital",
		"hospital_id": hospital.ID,
	})
	log.Info("Attempting to update hospital")

	if err := s.repo.Update(ctx, hospital); err != nil {
		log.WithError(err).Error("Failed to update hospital in repository")
		return fmt.Errorf("service: could not update hospital: %w", err)
	}

	log.Info("Hospital updated successfully")
	return nil
}

// DeleteHospital удаляет больницу. Вызовы со ссылкой на нее не трогаются.
func (s *hospitalService) DeleteHospital(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "hospital",
		"method":      "DeleteHospital",
		"hospital_id": id,
	})
	log.Info("Attempting to delete hospital")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete hospital in repository")
		return fmt.Errorf("service: could not delete hospital: %w", err)
	}

	log.Info("Hospital deleted successfully")
	return nil
}

// UpdateBeds сохраняет количество свободных мест и рассылает BEDS_UPDATE
func (s *hospitalService) UpdateBeds(ctx context.Context, id int64, icuAvailable, bedsAvailable int) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "hospital",
		"method":         "UpdateBeds",
		"hospital_id":    id,
		"icu_available":  icuAvailable,
		"beds_available": bedsAvailable,
	})

	if err := s.repo.UpdateBeds(ctx, id, icuAvailable, bedsAvailable); err != nil {
		log.WithError(err).Error("Failed to update hospital beds in repository")
		return fmt.Errorf("service: could not update hospital beds: %w", err)
	}

	publishEvent(ctx, s.publisher, log, webhook.Event{
		Type:     webhook.EventBedsUpdate,
		Entity:   webhook.EntityHospital,
		EntityID: id,
		Data:     webhook.BedsData{ICUAvailable: icuAvailable, BedsAvailable: bedsAvailable},
	})
	log.Info("Hospital beds updated successfully")
	return nil
}
