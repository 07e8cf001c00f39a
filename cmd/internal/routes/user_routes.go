package routes

import (
	"context"
	"io"
	"net/http"

	"vedacare/cmd/internal/service"
	"vedacare/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(req *service.RegisterRequest) apierror.ErrorResponse
	Login(req *service.LoginRequest) (*service.LoginResponse, apierror.ErrorResponse)
	GetProfile(userID int) (*service.UserResponse, apierror.ErrorResponse)
	UpdateProfilePhoto(ctx context.Context, userID int, data []byte, contentType string) (*service.PhotoUploadResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService    UserService
	MaxUploadBytes int64
}

func NewUserDefault(userService UserService, maxUploadBytes int64) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService, MaxUploadBytes: maxUploadBytes}
}

func (u *DefaultUserRoute) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	apierr := u.UserService.Register(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusCreated)
}

func (u *DefaultUserRoute) Login(c echo.Context) error {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) GetProfile(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	user, apierr := u.UserService.GetProfile(uid)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

// UploadProfilePhoto expects a multipart form with an "image" field.
func (u *DefaultUserRoute) UploadProfilePhoto(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("image"))
	}

	// Bounce oversized files before reading a single byte of them.
	if fh.Size > u.MaxUploadBytes {
		return c.JSON(apierror.ImageTooLargeError.Code(), apierror.ImageTooLargeError)
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, u.MaxUploadBytes+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.UpdateProfilePhoto(c.Request().Context(), uid, data, fh.Header.Get(echo.HeaderContentType))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
