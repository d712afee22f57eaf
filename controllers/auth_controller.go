package controllers

import (
	"errors"

	"github.com/Ashitosh2004/hotellucky/pkg/resp"
	"github.com/Ashitosh2004/hotellucky/services"
	"github.com/Ashitosh2004/hotellucky/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrTooManyAttempts):
		resp.Unauthorized(c, err.Error())
		return
	case err != nil:
		resp.Unauthorized(c, "login failed")
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// POST /auth/logout (requires login)
// Sessions are stateless JWTs; this endpoint is the clients' teardown
// point, after which they drop the stored token.
func (a *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me (requires login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "role": user.Role})
}
