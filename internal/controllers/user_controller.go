package controllers

import (
	"net/http"

	"github.com/poofware/blog-api/internal/dtos"
	"github.com/poofware/blog-api/internal/services"
	"github.com/poofware/blog-api/internal/utils"
)

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GET /api/v1/users
func (c *UserController) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := getClaims(r); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	users, err := c.userService.ListUsers(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUsersFromModels(users))
}

// GET /api/v1/users/{id}
func (c *UserController) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := getClaims(r); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	id, err := parsePathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	user, err := c.userService.GetUser(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserFromModel(*user))
}
