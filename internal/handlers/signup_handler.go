package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/services"
	"rewardstracker/internal/uuid"
)

// SignupHandler handles account creation and lookup.
type SignupHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(accountService services.AccountServicer, auditService services.AuditServicer) *SignupHandler {
	return &SignupHandler{accountService: accountService, auditService: auditService}
}

// SignupRequest represents the request payload for creating an account.
// Every field is nullable; at least one of email and phone is required.
type SignupRequest struct {
	Email        *string `json:"email" binding:"omitempty,email_shape"`
	Phone        *string `json:"phone" binding:"omitempty,phone10"`
	PasswordHash *string `json:"passwordHash"`
}

// Signup handles account creation
// @Summary     Create an account
// @Description Create an account from an email and/or phone number. The secret sent as passwordHash is bcrypt-hashed before it is stored and is never returned.
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email or phone already registered"
// @Failure     500 {object} ErrorResponse "User creation failed"
// @Router      /signup [post]
func (h *SignupHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	account, err := h.accountService.CreateAccount(req.Email, req.Phone, req.PasswordHash)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.LogAccountCreated(account, c.ClientIP())

	c.JSON(http.StatusCreated, account)
}

// GetAccount returns an account by ID
// @Summary     Get an account
// @Description Read back an account created at signup
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Account"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *SignupHandler) GetAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondWithError(c, apperrors.ErrAccountNotFound)
		return
	}

	account, err := h.accountService.GetAccountByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
