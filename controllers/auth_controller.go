package controllers

import (
	"errors"
	"net/http"
	"sticker-shop/models"
	"sticker-shop/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// @Summary Register
// @Description Register an account. The first account becomes the admin.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.RegisterRequest true "Credentials"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	result, err := ctrl.auth.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to register"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Registered successfully", Data: result})
}

// @Summary Login
// @Description Log in and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	result, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged in successfully", Data: result})
}
