package controllers

import (
	"net/http"

	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/Sunatl/mushkiloti-gomea/utils"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{authService: service}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.authService.Register(req.Username, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, user.Summary())
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.authService.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  user.Summary(),
	})
}

// GET /auth/me (protected)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.authService.GetUser(utils.CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, user.Summary())
}
