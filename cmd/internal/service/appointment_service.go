package service

import (
	"vedacare/cmd/internal/domain/entity"
	"vedacare/cmd/internal/utils"
	"vedacare/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AppointmentRepository interface {
	FindByID(id int) (*entity.Appointment, error)
	FindAllByDate() ([]*entity.Appointment, error)
	Save(appointment *entity.Appointment) error
}

type AppointmentRequest struct {
	Name      string  `json:"name" validate:"required,max=80"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,min=3,max=20"`
	Date      string  `json:"date" validate:"required,calendardate"`
	Time      string  `json:"time" validate:"required,clocktime"`
	Treatment string  `json:"treatment" validate:"required,max=128"`
	Message   *string `json:"message" validate:"omitempty,max=2048"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type AppointmentResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Treatment string  `json:"treatment"`
	Message   *string `json:"message,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
}

func NewAppointmentService(apptRepo AppointmentRepository, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, Validate: validate}
}

// GetAppointments lists every booking, earliest day first.
func (a *DefaultAppointmentService) GetAppointments() ([]*AppointmentResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindAllByDate()
	if err != nil {
		log.Errorf("failed to fetch appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		resp[i] = toAppointmentResponse(appt)
	}
	return resp, nil
}

func (a *DefaultAppointmentService) CreateAppointment(req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	date, err := utils.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	timeOfDay, err := utils.ParseClockTime(req.Time)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	now := utils.NowUTC()
	appointment := &entity.Appointment{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      date,
		TimeOfDay: timeOfDay,
		Treatment: req.Treatment,
		Message:   req.Message,
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = a.AppointmentRepo.Save(appointment)
	if err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appointment), nil
}

// UpdateStatus changes the status field and nothing else. A missing id
// is an explicit not-found response.
func (a *DefaultAppointmentService) UpdateStatus(id int, req *StatusUpdateRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if appt == nil {
		return nil, apierror.NotFoundError
	}

	appt.Status = req.Status
	appt.UpdatedAt = utils.NowUTC()

	err = a.AppointmentRepo.Save(appt)
	if err != nil {
		log.Errorf("failed to update appointment %d status: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        appt.ID,
		Name:      appt.Name,
		Email:     appt.Email,
		Phone:     appt.Phone,
		Date:      utils.FormatCalendarDate(appt.Date),
		Time:      utils.FormatClockTime(appt.TimeOfDay),
		Treatment: appt.Treatment,
		Message:   appt.Message,
		Status:    appt.Status,
		CreatedAt: utils.FormatEpoch(appt.CreatedAt),
		UpdatedAt: utils.FormatEpoch(appt.UpdatedAt),
	}
}
