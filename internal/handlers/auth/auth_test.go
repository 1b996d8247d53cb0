package auth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/service/authservice"
	"github.com/obralink/obralink/pkg/auth"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegister(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"login":"testuser","password":"testpassword","role":"OFICIO","zone":"Palermo"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "testuser", "testpassword", "OFICIO", "Palermo").
					Return(
						&domain.User{ID: 1, Login: "testuser"},
						&domain.UserProfile{ID: 11, UserID: 1, Role: domain.RoleOficio, Zone: "Palermo", Score: 5},
						nil,
					)
				service.EXPECT().GenerateToken(gomock.Any(), 1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown role",
			body: `{"login":"testuser","password":"testpassword","role":"ADMIN"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "testuser", "testpassword", "ADMIN", "").
					Return(nil, nil, authservice.ErrInvalidRole)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"testuser","password":"testpassword","role":"PERSONA"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "testuser", "testpassword", "PERSONA", "").
					Return(nil, nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Token generation fails",
			body: `{"login":"testuser","password":"testpassword","role":"PERSONA"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "testuser", "testpassword", "PERSONA", "").
					Return(&domain.User{ID: 1, Login: "testuser"}, &domain.UserProfile{UserID: 1}, nil)
				service.EXPECT().GenerateToken(gomock.Any(), 1).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLogin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"login":"testuser","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "testuser", "testpassword").
					Return(&domain.User{ID: 1, Login: "testuser"}, nil)
				service.EXPECT().GenerateToken(gomock.Any(), 1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testuser","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "testuser", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetProfile(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns the profile", func(t *testing.T) {
		service.EXPECT().GetProfile(gomock.Any(), 1).
			Return(&domain.UserProfile{UserID: 1, Role: domain.RoleOficio, Zone: "Palermo", Score: 4.8, PenaltyCount: 1}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
		r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
		w := httptest.NewRecorder()

		handler.GetProfile(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":1,"role":"OFICIO","zone":"Palermo","score":4.8,"penalty_count":1}`, w.Body.String())
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().GetProfile(gomock.Any(), 1).Return(nil, errors.New("db error"))

		r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
		r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
		w := httptest.NewRecorder()

		handler.GetProfile(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
