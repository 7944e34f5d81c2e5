package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/heystay/booking-api/cmd/config"
	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/model"
	userrepo "github.com/heystay/booking-api/repository/user"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error)
}

type AuthAppImpl struct {
	config   *config.Config
	userRepo userrepo.UserRepository
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository) AuthApp {
	return &AuthAppImpl{
		config:   config,
		userRepo: userRepo,
	}
}

// tokenClaims is the signed token payload: user identity on top of the
// registered claim set.
type tokenClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Error("[Login] err userRepo.GetByUsername", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, err := s.generateJWT(user.ID, user.Username)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{Token: token}, nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("token missing user id")
	}

	return &model.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}

// generateJWT creates a signed token embedding the user identity.
func (s *AuthAppImpl) generateJWT(userID, username string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}
