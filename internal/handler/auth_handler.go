package handler

import (
	"net/http"

	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// /authのHTTP。会員登録とログインだけ（このサービスの認証は入口の提供のみ）。
type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase
	loginUC    *auth.LoginUsecase
}

// DI
func NewAuthHandler(registerUC *auth.RegisterUserUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// /auth/register のリクエストボディ。
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /auth/login のリクエストボディ。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case auth.ErrNameRequired, auth.ErrInvalidEmailFormat, auth.ErrPasswordTooShort, auth.ErrWeakPassword:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case auth.ErrEmailAlreadyExists:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, out)
}
