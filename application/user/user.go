package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/inventory/cmd/config"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	redisrepo "github.com/muhammadheryan/inventory/repository/redis"
	userrepo "github.com/muhammadheryan/inventory/repository/user"
	"github.com/muhammadheryan/inventory/utils/errors"
	"github.com/muhammadheryan/inventory/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	// ValidateToken returns the merchant id bound to a live session.
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	email := strings.ToLower(req.Email)

	existing, err := s.userRepo.Get(ctx, &model.MerchantFilter{Email: email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existing, err = s.userRepo.Get(ctx, &model.MerchantFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	merchant, err := s.userRepo.Create(ctx, &model.MerchantEntity{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		ID:    merchant.ID,
		Name:  merchant.Name,
		Email: merchant.Email,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	filter := &model.MerchantFilter{}
	if strings.Contains(req.Identifier, "@") {
		filter.Email = strings.ToLower(req.Identifier)
	} else {
		filter.Phone = req.Identifier
	}

	merchant, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if merchant == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(merchant.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(merchant.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, merchant.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  merchant.Name,
		Email: merchant.Email,
		Token: token,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return "", err
	}

	sessionMerchantID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}
	if sessionMerchantID != claims.Subject {
		return "", fmt.Errorf("token does not match merchant session")
	}

	return claims.Subject, nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT signs a token for the merchant and returns it with its jti.
func (s *UserAppImpl) generateJWT(merchantID string) (string, string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   merchantID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
