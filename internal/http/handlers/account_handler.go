// Account HTTP handlers.
//
// This file exposes REST endpoints for registration and login:
//   - POST /api/account/register         (create a User account)
//   - POST /api/account/register/doctor  (create a Doctor account, key-gated)
//   - POST /api/account/login            (exchange credentials for a token)
//
// All three endpoints are public; they are the only unauthenticated routes in
// the API besides health and metrics.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//
// DTOs
//

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	// Username is the unique display name used to sign in.
	Username string `json:"username" binding:"required,min=1,max=64" example:"alice"`
	// Email is the unique address used to sign in.
	Email string `json:"email" binding:"required,email" example:"alice@example.com"`
	// Password must be at least 6 characters with an uppercase letter,
	// a lowercase letter, and a digit.
	Password string `json:"password" binding:"required" example:"Recover1"`
}

// RegisterDoctorRequest is the JSON payload for creating a doctor account.
// SecretKey must match the server's doctor registration key.
type RegisterDoctorRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=64" example:"drhouse"`
	Email     string `json:"email" binding:"required,email" example:"house@example.com"`
	Password  string `json:"password" binding:"required" example:"Recover1"`
	SecretKey string `json:"secretKey" binding:"required" example:"clinic-shared-key"`
}

// LoginRequest is the JSON payload for signing in. Login accepts either the
// username or the email address, matched case-insensitively.
type LoginRequest struct {
	Login    string `json:"login" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"Recover1"`
}

//
// Handlers
//

// Register godoc
// @ID          register
// @Summary     Register a new user
// @Description Creates a User account and returns a signed bearer token.
// @Tags        Account
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     200  {object}  services.AuthResult
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /account/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username, email and password are required")
		return
	}

	res, err := h.accountSvc.Register(c.Request.Context(),
		strings.TrimSpace(req.Username), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// RegisterDoctor godoc
// @ID          registerDoctor
// @Summary     Register a new doctor
// @Description Creates a Doctor account when the shared secret key matches.
// @Tags        Account
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterDoctorRequest  true  "Doctor registration payload"
//
// @Success     200  {object}  services.AuthResult
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid secret key"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /account/register/doctor [post]
func (h *Handlers) RegisterDoctor(c *gin.Context) {
	var req RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username, email, password and secretKey are required")
		return
	}

	res, err := h.accountSvc.RegisterDoctor(c.Request.Context(),
		strings.TrimSpace(req.Username), strings.TrimSpace(req.Email), req.Password, req.SecretKey)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// Login godoc
// @ID          login
// @Summary     Sign in
// @Description Verifies credentials (username or email) and returns a bearer token.
// @Tags        Account
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
//
// @Success     200  {object}  services.AuthResult
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Router      /account/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "login and password are required")
		return
	}

	res, err := h.accountSvc.Login(c.Request.Context(), strings.TrimSpace(req.Login), req.Password)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}
