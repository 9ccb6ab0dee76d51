//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"helperhub/internal/domain/account"
	"helperhub/internal/handler/api"
	reqdto "helperhub/internal/handler/dto/request"
	resdto "helperhub/internal/handler/dto/response"
	"helperhub/internal/pkg/config"
	"helperhub/internal/pkg/cookie"
	"helperhub/internal/usecase"
	"helperhub/internal/usecase/readmodel"
	"helperhub/tests/common/httptest"
	"helperhub/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubAuthUseCase
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.stub = &stubAuthUseCase{}

	handler := api.NewAuthHandler(s.stub, config.NewTestConfig())

	s.router.POST("/auth/register", handler.Register)
	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("account_id", uuid.New())
		}
		handler.Me(c)
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func registerBody() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     "New Customer",
		Email:    "new@example.com",
		Password: "password123",
		Phone:    "+91 9000000001",
		Role:     "customer",
		City:     "Bengaluru",
		State:    "Karnataka",
	}
}

func authResult() *usecase.AuthResult {
	return &usecase.AuthResult{
		Account: &readmodel.AccountRM{
			ID:    uuid.New(),
			Name:  "New Customer",
			Email: "new@example.com",
			Role:  "customer",
		},
		Token: "test-jwt-token",
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	s.Run("success: returns 201 and sets the token cookie", func() {
		expected := authResult()
		s.stub.registerFn = func(_ context.Context, params usecase.RegisterParams) (*usecase.AuthResult, error) {
			s.Equal("new@example.com", params.Email)
			return expected, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerBody(), "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.Token)
		s.Equal("new@example.com", response.Account.Email)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email")},
			{name: "missing field: password", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", "short")},
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: phone", mutate: testutil.Field("phone", nil)},
			{name: "missing field: city", mutate: testutil.Field("city", nil)},
			{name: "missing field: state", mutate: testutil.Field("state", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), registerBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{"duplicate email", usecase.ErrDuplicateEmail, http.StatusConflict, "email already exists"},
			{"duplicate phone", usecase.ErrDuplicatePhone, http.StatusConflict, "phone number already exists"},
			{"validation failure", usecase.ErrValidation, http.StatusBadRequest, "Invalid request data"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.stub.registerFn = func(_ context.Context, _ usecase.RegisterParams) (*usecase.AuthResult, error) {
					return nil, tc.usecaseError
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 500 envelope for unmapped errors", func() {
		s.stub.registerFn = func(_ context.Context, _ usecase.RegisterParams) (*usecase.AuthResult, error) {
			return nil, errors.New("database error")
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerBody(), "")
		httptest.AssertFaultResponse(s.T(), rec, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	body := reqdto.LoginRequest{Email: "new@example.com", Password: "password123"}

	s.Run("success: returns 200 OK for valid credentials", func() {
		expected := authResult()
		s.stub.loginFn = func(_ context.Context, credentials account.Credentials) (*usecase.AuthResult, error) {
			s.Equal("new@example.com", credentials.Email().Value())
			return expected, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.Token)
	})

	s.Run("error: 401 for bad credentials", func() {
		s.stub.loginFn = func(_ context.Context, _ account.Credentials) (*usecase.AuthResult, error) {
			return nil, usecase.ErrInvalidCredentials
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"email": "new@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the account view", func() {
		expected := authResult().Account
		s.stub.currentFn = func(_ context.Context, _ uuid.UUID) (*readmodel.AccountRM, error) {
			return expected, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expected.Email, response["email"])
	})

	s.Run("error: 401 when account_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})

	s.Run("error: 404 when the account is gone", func() {
		s.stub.currentFn = func(_ context.Context, _ uuid.UUID) (*readmodel.AccountRM, error) {
			return nil, usecase.ErrAccountNotFound
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Account not found")
	})
}
