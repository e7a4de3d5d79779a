package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown emails and bad passwords
// alike, so the response does not leak which one was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims extends JWT standard claims with the guardian's identity and the
// family scope applied to every authenticated request.
type Claims struct {
	jwt.RegisteredClaims
	GuardianID int `json:"guardian_id"`
	FamilyID   int `json:"family_id"`
}

// AuthService handles guardian authentication and JWT issuance.
type AuthService struct {
	cfg          *config.Config
	guardianRepo *repository.GuardianRepository
	familyRepo   *repository.FamilyRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, guardianRepo *repository.GuardianRepository, familyRepo *repository.FamilyRepository) *AuthService {
	return &AuthService{cfg: cfg, guardianRepo: guardianRepo, familyRepo: familyRepo}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// Login verifies credentials and returns a signed token with the guardian
// and family attached.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	guardian, err := s.guardianRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guardian.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	family, err := s.familyRepo.GetByID(ctx, guardian.FamilyID)
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(guardian.ID, guardian.FamilyID)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token, Guardian: *guardian, Family: *family}, nil
}

// GenerateToken creates a signed JWT for a guardian.
func (s *AuthService) GenerateToken(guardianID, familyID int) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(guardianID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		GuardianID: guardianID,
		FamilyID:   familyID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// GetProfile returns the guardian and family for the authenticated claims.
func (s *AuthService) GetProfile(ctx context.Context, guardianID int) (*model.Guardian, *model.Family, error) {
	guardian, err := s.guardianRepo.GetByID(ctx, guardianID)
	if err != nil {
		return nil, nil, err
	}
	family, err := s.familyRepo.GetByID(ctx, guardian.FamilyID)
	if err != nil {
		return nil, nil, err
	}
	return guardian, family, nil
}
