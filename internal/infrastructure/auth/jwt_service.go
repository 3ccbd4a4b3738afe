package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/seabasket/seabasket-api/domain"
)

// JWTServiceImpl implements domain.TokenService. The signing key is
// the configured secret suffixed with a version tag; bumping the tag
// invalidates every outstanding token at once.
type JWTServiceImpl struct {
	secretKey []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

// NewJWTService creates a new JWT token service
func NewJWTService(secret, version string, accessTTL, resetTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secret + "_" + version),
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
	}
}

// GenerateUserToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateUserToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(j.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GenerateResetToken implements domain.TokenService. Reset tokens are
// short-lived and carry the account email instead of an id.
func (j *JWTServiceImpl) GenerateResetToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(j.resetTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService. The signature is always
// checked before any claim is trusted; there is deliberately no
// decode-without-verify path.
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	out := &domain.TokenClaims{ExpiresAt: int64(exp)}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = int64(iat)
	}
	if id, ok := claims["user_id"].(float64); ok {
		out.UserID = uint(id)
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if out.UserID == 0 && out.Email == "" {
		return nil, domain.ErrTokenMalformed
	}
	return out, nil
}
