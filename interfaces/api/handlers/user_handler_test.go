package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/services"
	"taskhub/interfaces/api/middleware"
	"taskhub/pkg/utils"
)

type stubUserService struct {
	register   func(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	login      func(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	getProfile func(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

func (s *stubUserService) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	return s.register(ctx, req)
}

func (s *stubUserService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	return s.login(ctx, req)
}

func (s *stubUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.getProfile(ctx, userID)
}

func (s *stubUserService) GenerateJWT(user *models.User) (string, error) {
	return "stub-token", nil
}

func sampleUser() *models.User {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.User{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		Name:      "Alice",
		Password:  "hashed",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newAuthApp(svc services.UserService) *fiber.App {
	app := fiber.New()
	h := NewHandlers(&Services{UserService: svc})

	auth := app.Group("/api/v1/auth")
	auth.Post("/register", h.UserHandler.Register)
	auth.Post("/login", h.UserHandler.Login)
	auth.Get("/me", middleware.Protected(testSecret), h.UserHandler.GetProfile)

	return app
}

func TestRegisterHandler(t *testing.T) {
	user := sampleUser()

	tests := []struct {
		name       string
		body       any
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       fiber.Map{"email": "alice@example.com", "name": "Alice", "password": "s3cret-pass"},
			wantStatus: fiber.StatusCreated,
		},
		{
			name:       "duplicate email",
			body:       fiber.Map{"email": "alice@example.com", "name": "Alice", "password": "s3cret-pass"},
			serviceErr: services.ErrEmailTaken,
			wantStatus: fiber.StatusConflict,
			wantCode:   utils.ErrCodeConflict,
		},
		{
			name:       "invalid email",
			body:       fiber.Map{"email": "not-an-email", "name": "Alice", "password": "s3cret-pass"},
			wantStatus: fiber.StatusBadRequest,
			wantCode:   utils.ErrCodeValidation,
		},
		{
			name:       "short password",
			body:       fiber.Map{"email": "alice@example.com", "name": "Alice", "password": "short"},
			wantStatus: fiber.StatusBadRequest,
			wantCode:   utils.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubUserService{
				register: func(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
					if tt.serviceErr != nil {
						return "", nil, tt.serviceErr
					}
					return "issued-token", user, nil
				},
			}
			app := newAuthApp(svc)

			resp := doRequest(t, app, fiber.MethodPost, "/api/v1/auth/register", "", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			env := decodeEnvelope(t, resp)
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %q", env.Error, tt.wantCode)
				}
				return
			}
			if !env.Success {
				t.Errorf("envelope = %+v, want success", env)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	user := sampleUser()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{"ok", nil, fiber.StatusOK, ""},
		{"bad credentials", services.ErrInvalidCredentials, fiber.StatusUnauthorized, utils.ErrCodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubUserService{
				login: func(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
					if tt.serviceErr != nil {
						return "", nil, tt.serviceErr
					}
					return "issued-token", user, nil
				},
			}
			app := newAuthApp(svc)

			resp := doRequest(t, app, fiber.MethodPost, "/api/v1/auth/login", "",
				fiber.Map{"email": "alice@example.com", "password": "s3cret-pass"})
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			env := decodeEnvelope(t, resp)
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %q", env.Error, tt.wantCode)
				}
			}
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	user := sampleUser()

	svc := &stubUserService{
		getProfile: func(ctx context.Context, userID uuid.UUID) (*models.User, error) {
			if userID == user.ID {
				return user, nil
			}
			return nil, services.ErrUserNotFound
		},
	}
	app := newAuthApp(svc)

	t.Run("authenticated", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodGet, "/api/v1/auth/me", bearerToken(t, user.ID), nil)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
		}
	})

	t.Run("no token", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodGet, "/api/v1/auth/me", "", nil)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
		}
	})
}
