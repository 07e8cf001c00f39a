package routes

import (
	"net/http"
	"strconv"

	"vedacare/cmd/internal/service"
	"vedacare/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TreatmentService interface {
	GetTreatments() ([]*service.TreatmentResponse, apierror.ErrorResponse)
	CreateTreatment(req *service.TreatmentRequest) (*service.TreatmentResponse, apierror.ErrorResponse)
	UpdateTreatment(id int, req *service.TreatmentUpdateRequest) (*service.TreatmentResponse, apierror.ErrorResponse)
}

type DefaultTreatmentRoute struct {
	TreatmentService TreatmentService
}

func NewTreatmentDefault(treatmentService TreatmentService) *DefaultTreatmentRoute {
	return &DefaultTreatmentRoute{TreatmentService: treatmentService}
}

func (t *DefaultTreatmentRoute) GetTreatments(c echo.Context) error {
	treatments, apierr := t.TreatmentService.GetTreatments()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, treatments)
}

func (t *DefaultTreatmentRoute) CreateTreatment(c echo.Context) error {
	var req service.TreatmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	treatment, apierr := t.TreatmentService.CreateTreatment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, treatment)
}

func (t *DefaultTreatmentRoute) UpdateTreatment(c echo.Context) error {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	var req service.TreatmentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	treatment, apierr := t.TreatmentService.UpdateTreatment(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, treatment)
}
