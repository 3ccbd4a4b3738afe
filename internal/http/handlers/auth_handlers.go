package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seabasket/seabasket-api/domain"
	"github.com/seabasket/seabasket-api/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	otpSvc  domain.OTPService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, otpSvc domain.OTPService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, otpSvc: otpSvc}
}

// SignUpRequest represents the sign-up request body
type SignUpRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
	Mobile   string `json:"mobile" binding:"required,max=32"`
}

// SignInRequest represents the sign-in request body; either email or
// mobile identifies the account.
type SignInRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest represents the forgot-password request body
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the reset-password request body
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// UpdateProfileRequest represents the profile update request body
type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"omitempty,max=255"`
	Email  string `json:"email" binding:"omitempty,email,max=255"`
	Mobile string `json:"mobile" binding:"omitempty,max=32"`
}

// OTPSendRequest represents the OTP send request body
type OTPSendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPVerifyRequest represents the OTP verification request body
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// SignUp handles user registration
func (h *AuthHandlers) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.SignUp(c.Request.Context(), req.Name, req.Email, req.Mobile, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sign-up successful. Please verify your email.",
		"user_id": user.ID,
	})
}

// SignIn handles user login and issues a bearer token
func (h *AuthHandlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" && req.Mobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email or mobile is required"})
		return
	}

	token, user, err := h.authSvc.SignIn(c.Request.Context(), req.Email, req.Mobile, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrUserNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
		}
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Sign-in successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// ForgotPassword emails a short-lived reset token
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token is sent to your email"})
}

// ResetPassword verifies the reset token and overwrites the password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.ResetPassword(c.Request.Context(), c.Param("token"), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid),
			errors.Is(err, domain.ErrTokenExpired),
			errors.Is(err, domain.ErrTokenMalformed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Password update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// UpdateProfile updates the authenticated user's profile fields
func (h *AuthHandlers) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.UpdateProfile(c.Request.Context(), userID, req.Name, req.Email, req.Mobile); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Update successful"})
}

// SendOTP generates and emails a verification code
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req OTPSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otpSvc.Send(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Please check your email and verify to continue"})
}

// VerifyOTP checks the submitted code and marks the account verified
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.otpSvc.Verify(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please verify your otp"})
		case errors.Is(err, domain.ErrOTPNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "OTP not found"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User is verified"})
}
