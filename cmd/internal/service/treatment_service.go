package service

import (
	"vedacare/cmd/internal/domain/entity"
	"vedacare/cmd/internal/utils"
	"vedacare/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type TreatmentRepository interface {
	FindAll() ([]*entity.Treatment, error)
	FindByID(id int) (*entity.Treatment, error)
	Save(treatment *entity.Treatment) error
}

type TreatmentRequest struct {
	Name            string         `json:"name" validate:"required,max=128"`
	Description     *string        `json:"description" validate:"omitempty,max=2048"`
	Price           *float64       `json:"price" validate:"omitempty,gte=0"`
	DurationMinutes *int           `json:"duration_minutes" validate:"omitempty,gt=0"`
	ImageURL        *string        `json:"image_url" validate:"omitempty,url"`
	Extra           map[string]any `json:"extra"`
}

// TreatmentUpdateRequest carries a partial record: only non-nil fields
// are merged into the stored treatment.
type TreatmentUpdateRequest struct {
	Name            *string        `json:"name" validate:"omitempty,min=1,max=128"`
	Description     *string        `json:"description" validate:"omitempty,max=2048"`
	Price           *float64       `json:"price" validate:"omitempty,gte=0"`
	DurationMinutes *int           `json:"duration_minutes" validate:"omitempty,gt=0"`
	ImageURL        *string        `json:"image_url" validate:"omitempty,url"`
	Extra           map[string]any `json:"extra"`
}

type TreatmentResponse struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Description     *string        `json:"description,omitempty"`
	Price           *float64       `json:"price,omitempty"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	ImageURL        *string        `json:"image_url,omitempty"`
	Extra           map[string]any `json:"extra,omitempty"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

type DefaultTreatmentService struct {
	TreatmentRepo TreatmentRepository
	Validate      *validator.Validate
}

func NewTreatmentService(treatmentRepo TreatmentRepository, validate *validator.Validate) *DefaultTreatmentService {
	return &DefaultTreatmentService{TreatmentRepo: treatmentRepo, Validate: validate}
}

func (t *DefaultTreatmentService) GetTreatments() ([]*TreatmentResponse, apierror.ErrorResponse) {
	treatments, err := t.TreatmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch all treatments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*TreatmentResponse, len(treatments))
	for i, treatment := range treatments {
		resp[i] = toTreatmentResponse(treatment)
	}
	return resp, nil
}

func (t *DefaultTreatmentService) CreateTreatment(req *TreatmentRequest) (*TreatmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := t.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	treatment := &entity.Treatment{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		ImageURL:        req.ImageURL,
		Extra:           req.Extra,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := t.TreatmentRepo.Save(treatment)
	if err != nil {
		log.Errorf("failed to save treatment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTreatmentResponse(treatment), nil
}

// UpdateTreatment merges the supplied fields into an existing record.
// A missing id is an explicit not-found, never an empty body.
func (t *DefaultTreatmentService) UpdateTreatment(id int, req *TreatmentUpdateRequest) (*TreatmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := t.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	treatment, err := t.TreatmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch treatment by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if treatment == nil {
		return nil, apierror.NotFoundError
	}

	if req.Name != nil {
		treatment.Name = *req.Name
	}
	if req.Description != nil {
		treatment.Description = req.Description
	}
	if req.Price != nil {
		treatment.Price = req.Price
	}
	if req.DurationMinutes != nil {
		treatment.DurationMinutes = req.DurationMinutes
	}
	if req.ImageURL != nil {
		treatment.ImageURL = req.ImageURL
	}
	if len(req.Extra) > 0 {
		if treatment.Extra == nil {
			treatment.Extra = make(map[string]any, len(req.Extra))
		}
		for k, v := range req.Extra {
			treatment.Extra[k] = v
		}
	}
	treatment.UpdatedAt = utils.NowUTC()

	err = t.TreatmentRepo.Save(treatment)
	if err != nil {
		log.Errorf("failed to update treatment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toTreatmentResponse(treatment), nil
}

func toTreatmentResponse(treatment *entity.Treatment) *TreatmentResponse {
	return &TreatmentResponse{
		ID:              treatment.ID,
		Name:            treatment.Name,
		Description:     treatment.Description,
		Price:           treatment.Price,
		DurationMinutes: treatment.DurationMinutes,
		ImageURL:        treatment.ImageURL,
		Extra:           treatment.Extra,
		CreatedAt:       utils.FormatEpoch(treatment.CreatedAt),
		UpdatedAt:       utils.FormatEpoch(treatment.UpdatedAt),
	}
}
