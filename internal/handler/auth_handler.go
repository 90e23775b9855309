package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
	"github.com/de0k/mobcard-server/internal/pkg/response"
	"github.com/de0k/mobcard-server/internal/service"
)

type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type credentialsRequest struct {
	Email string `json:"email"`
	PW    string `json:"pw"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.PW == "" {
		response.Message(c, http.StatusBadRequest, "email and pw are required")
		return
	}
	if err := h.accounts.SignUp(c.Request.Context(), req.Email, req.PW); err != nil {
		if appErr.IsConflict(err) {
			response.Message(c, http.StatusConflict, "Email already exists")
			return
		}
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "User created successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.PW == "" {
		response.Message(c, http.StatusBadRequest, "email and pw are required")
		return
	}
	if err := h.accounts.Login(c.Request.Context(), req.Email, req.PW); err != nil {
		if err == appErr.ErrUnauthorized {
			response.Message(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Login successful")
}

// DeleteAccount answers 401 with the same body for an unknown email and for a
// password mismatch, so callers cannot probe which emails are registered.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.PW == "" {
		response.Message(c, http.StatusBadRequest, "email and pw are required")
		return
	}
	if err := h.accounts.Delete(c.Request.Context(), req.Email, req.PW); err != nil {
		if err == appErr.ErrUnauthorized {
			response.Message(c, http.StatusUnauthorized, "Password does not match")
			return
		}
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Account deleted successfully")
}
