package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/poofware/blog-api/internal/dtos"
	"github.com/poofware/blog-api/internal/services"
	"github.com/poofware/blog-api/internal/utils"
)

type AuthController struct {
	authService services.AuthService
	validate    *validator.Validate
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
		validate:    validator.New(),
	}
}

// POST /api/v1/register
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", err)
		return
	}

	user, err := c.authService.Register(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewUserFromModel(*user))
}

// POST /api/v1/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Please provide username/email and password", err)
		return
	}

	user, token, err := c.authService.Login(r.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Token: token,
		User:  dtos.NewUserFromModel(*user),
	})
}

// POST /api/v1/logout
func (c *AuthController) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := getClaims(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	if err := c.authService.Logout(r.Context(), claims); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LogoutResponse{Message: "Logout successful"})
}
