package services

import (
	"context"
	"fmt"
	"log"

	"github.com/seabasket/seabasket-api/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	cartRepo    domain.CartRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	notifier    domain.NotificationService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	cartRepo domain.CartRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notifier domain.NotificationService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		notifier:    notifier,
	}
}

// SignUp implements domain.AuthService. The cart is created together
// with the user; a cart-creation fault does not roll the user back
// and is only logged. Welcome email and SMS go out after the fact,
// best-effort, off the request goroutine.
func (s *AuthServiceImpl) SignUp(ctx context.Context, name, email, mobile, password string) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmailOrMobile(ctx, email, mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.cartRepo.Create(ctx, &domain.Cart{UserID: user.ID}); err != nil {
		log.Printf("CART_CREATE_FAILED: user_id=%d error=%v", user.ID, err)
	}

	go s.sendWelcome(user)

	return user, nil
}

// sendWelcome delivers the sign-up email and SMS. Failures are logged
// and never surfaced; the account is already created at this point.
func (s *AuthServiceImpl) sendWelcome(user *domain.User) {
	if err := s.notifier.SendEmail(user.Email, "Signup successful",
		"<h1>You have successfully signed up with Seabasket</h1>"); err != nil {
		log.Printf("WELCOME_EMAIL_FAILED: user_id=%d error=%v", user.ID, err)
	}
	if err := s.notifier.SendSMS(user.Mobile,
		"Welcome to Seabasket! Your account has been created."); err != nil {
		log.Printf("WELCOME_SMS_FAILED: user_id=%d error=%v", user.ID, err)
	}
}

// SignIn implements domain.AuthService. Either email or mobile
// identifies the account; unverified accounts cannot sign in.
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, mobile, password string) (string, *domain.User, error) {
	var (
		user *domain.User
		err  error
	)
	if email != "" {
		user, err = s.userRepo.FindByEmail(ctx, email)
	} else {
		user, err = s.userRepo.FindByMobile(ctx, mobile)
	}
	if err != nil {
		return "", nil, err
	}

	if !user.IsVerified {
		return "", nil, domain.ErrUserNotVerified
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.GenerateUserToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// UpdateProfile implements domain.AuthService. Empty fields keep
// their current value.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uint, name, email, mobile string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if mobile != "" {
		user.Mobile = mobile
	}
	return s.userRepo.Update(ctx, user)
}

// ForgotPassword implements domain.AuthService. The reset token is
// short-lived and emailed to the account address.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	token, err := s.tokenSvc.GenerateResetToken(email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	body := fmt.Sprintf(
		"<p>A request was made to change the password for %s.</p>"+
			"<p>Use this token to change your password: %s</p>",
		email, token)
	if err := s.notifier.SendEmail(email, "Reset Password", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// ResetPassword implements domain.AuthService. The token signature
// and expiry are verified before the embedded email is trusted.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokenSvc.Validate(token)
	if err != nil {
		return err
	}
	if claims.Email == "" {
		return domain.ErrTokenInvalid
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePasswordByEmail(ctx, claims.Email, hashedPassword)
}
