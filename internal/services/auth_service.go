package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"github.com/socialconnect/backend/pkg/mailer"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Single-purpose token purposes
const (
	purposeEmailVerification = "email_verification"
	purposePasswordReset     = "password_reset"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// AuthService implements the account lifecycle: register inactive, verify
// email, login, change password, password reset.
type AuthService struct {
	db        *gorm.DB
	profiles  *ProfileService
	mail      mailer.Mailer
	logger    *zap.Logger
	jwtSecret string
	baseURL   string
}

// NewAuthService creates a new AuthService
func NewAuthService(db *gorm.DB, profiles *ProfileService, mail mailer.Mailer, logger *zap.Logger, jwtSecret, baseURL string) *AuthService {
	return &AuthService{
		db:        db,
		profiles:  profiles,
		mail:      mail,
		logger:    logger,
		jwtSecret: jwtSecret,
		baseURL:   baseURL,
	}
}

// Register creates an inactive account with its profile and sends the
// verification link. Mail delivery is best-effort; a failure is logged,
// not surfaced.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	if !usernameRe.MatchString(req.Username) {
		return nil, apperrors.NewValidation("username", "must be 3-30 chars, alphanumeric or underscore")
	}
	if req.Password != req.Password2 {
		return nil, apperrors.NewValidation("password", "passwords do not match")
	}

	userRepo := repositories.NewPostgresUserRepository(s.db)
	if _, err := userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, apperrors.NewConflict("username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, apperrors.NewConflict("email already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     strings.ToLower(req.Email),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
		IsActive:  false,
	}
	if err := userRepo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("username or email already in use")
		}
		return nil, err
	}

	if _, err := s.profiles.EnsureProfile(user.ID); err != nil {
		return nil, err
	}

	token, err := s.actionToken(user.ID, purposeEmailVerification, 48*time.Hour)
	if err != nil {
		return nil, err
	}
	verifyURL := fmt.Sprintf("%s/api/v1/auth/verify/%s", s.baseURL, token)
	if err := s.mail.Send(user.Email, "Verify your SocialConnect account", "Click to verify: "+verifyURL); err != nil {
		s.logger.Warn("verification mail not delivered",
			zap.String("email", user.Email),
			zap.Error(err))
	}

	return user, nil
}

// VerifyEmail redeems a verification token and activates the account.
// Verifying an already-active account is a no-op.
func (s *AuthService) VerifyEmail(token string) error {
	userID, err := s.redeemActionToken(token, purposeEmailVerification)
	if err != nil {
		return err
	}

	userRepo := repositories.NewPostgresUserRepository(s.db)
	user, err := userRepo.GetUserByID(userID)
	if err != nil {
		return apperrors.NewValidation("token", "invalid or expired token")
	}
	if user.IsActive {
		return nil
	}
	user.IsActive = true
	return userRepo.UpdateUser(user)
}

// Login authenticates by username or email and returns an access token
// with the user. Inactive accounts are rejected.
func (s *AuthService) Login(req *models.LoginRequest) (string, *models.User, error) {
	userRepo := repositories.NewPostgresUserRepository(s.db)

	var user *models.User
	var err error
	if strings.Contains(req.Username, "@") {
		user, err = userRepo.GetUserByEmail(req.Username)
	} else {
		user, err = userRepo.GetUserByUsername(req.Username)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrAccountInactive
	}

	now := time.Now()
	user.LastLogin = &now
	if err := userRepo.UpdateUser(user); err != nil {
		return "", nil, err
	}

	token, err := s.accessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePassword verifies the old password and stores a new hash
func (s *AuthService) ChangePassword(userID uint, req *models.ChangePasswordRequest) error {
	userRepo := repositories.NewPostgresUserRepository(s.db)
	user, err := userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return apperrors.NewValidation("old_password", "wrong password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return userRepo.UpdateUser(user)
}

// RequestPasswordReset mails a reset link when the address exists. The
// response never reveals whether it does.
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := repositories.NewPostgresUserRepository(s.db).GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := s.actionToken(user.ID, purposePasswordReset, 2*time.Hour)
	if err != nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/api/v1/auth/password-reset-confirm/%s", s.baseURL, token)
	if err := s.mail.Send(user.Email, "Password reset", "Reset link: "+resetURL); err != nil {
		s.logger.Warn("password reset mail not delivered",
			zap.String("email", user.Email),
			zap.Error(err))
	}
	return nil
}

// ConfirmPasswordReset redeems a reset token and stores the new password
func (s *AuthService) ConfirmPasswordReset(token, newPassword string) error {
	userID, err := s.redeemActionToken(token, purposePasswordReset)
	if err != nil {
		return err
	}

	userRepo := repositories.NewPostgresUserRepository(s.db)
	user, err := userRepo.GetUserByID(userID)
	if err != nil {
		return apperrors.NewValidation("token", "invalid or expired token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return userRepo.UpdateUser(user)
}

func (s *AuthService) accessToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) actionToken(userID uint, purpose string, ttl time.Duration) (string, error) {
	claims := &models.ActionTokenClaims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) redeemActionToken(tokenString, purpose string) (uint, error) {
	claims := &models.ActionTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid || claims.Purpose != purpose {
		return 0, apperrors.NewValidation("token", "invalid or expired token")
	}
	return claims.UserID, nil
}
