package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"vedacare/cmd/internal/auth"
	"vedacare/cmd/internal/domain/entity"
	s3client "vedacare/cmd/internal/integration/aws/s3"
	"vedacare/cmd/internal/utils"
	"vedacare/cmd/internal/utils/apierror"

	"github.com/aws/smithy-go"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user, never the password hash.
type UserResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ProfilePhotoURL *string `json:"profile_photo_url,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type PhotoUploadResponse struct {
	ImageURL string        `json:"image_url"`
	User     *UserResponse `json:"user"`
}

type DefaultUserService struct {
	UserRepo       UserRepository
	Validate       *validator.Validate
	Uploader       s3client.Uploader
	JWTSecret      string
	TokenTTL       time.Duration
	MaxUploadBytes int64
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, uploader s3client.Uploader,
	jwtSecret string, tokenTTL time.Duration, maxUploadBytes int64) *DefaultUserService {
	return &DefaultUserService{
		UserRepo:       userRepo,
		Validate:       validate,
		Uploader:       uploader,
		JWTSecret:      jwtSecret,
		TokenTTL:       tokenTTL,
		MaxUploadBytes: maxUploadBytes,
	}
}

// Register creates the user record. No token is issued here; the caller
// logs in separately.
func (u *DefaultUserService) Register(req *RegisterRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return apierror.InternalServerError
	}

	if found {
		return apierror.UserAlreadyExistsError
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = u.UserRepo.Save(user)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (u *DefaultUserService) Login(req *LoginRequest) (*LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.NotFoundError
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apierror.InvalidCredentialsError
	}

	token, err := auth.MakeToken(user.ID, u.JWTSecret, u.TokenTTL)
	if err != nil {
		log.Errorf("failed to sign token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func (u *DefaultUserService) GetProfile(userID int) (*UserResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByID(userID)
	if err != nil {
		log.Errorf("failed to find user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.NotFoundError
	}
	return toUserResponse(user), nil
}

// UpdateProfilePhoto pushes the image to the photo host first and only
// mutates the user record once a durable URL came back. A failed upload
// leaves the record untouched.
func (u *DefaultUserService) UpdateProfilePhoto(ctx context.Context, userID int, data []byte, contentType string) (*PhotoUploadResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByID(userID)
	if err != nil {
		log.Errorf("failed to find user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.NotFoundError
	}

	if int64(len(data)) > u.MaxUploadBytes {
		return nil, apierror.ImageTooLargeError
	}

	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apierror.NotAnImageError
	}

	key := "profile-photos/" + uuid.NewString() + extensionFor(contentType)
	url, err := u.Uploader.Upload(ctx, data, contentType, key)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			log.Errorf("photo upload failed for user %d: %s - %s", user.ID, apiErr.ErrorCode(), apiErr.ErrorMessage())
		} else {
			log.Errorf("photo upload failed for user %d: %v", user.ID, err)
		}
		return nil, apierror.UploadFailedError
	}

	user.ProfilePhotoURL = &url
	user.UpdatedAt = utils.NowUTC()
	err = u.UserRepo.Save(user)
	if err != nil {
		log.Errorf("failed to store photo url for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &PhotoUploadResponse{ImageURL: url, User: toUserResponse(user)}, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		ProfilePhotoURL: user.ProfilePhotoURL,
		CreatedAt:       utils.FormatEpoch(user.CreatedAt),
		UpdatedAt:       utils.FormatEpoch(user.UpdatedAt),
	}
}
