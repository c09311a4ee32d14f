// Package services - Auth domain.
package services

import (
	"context"
	"time"

	"ngo_portal/internal/api/auth/models"
	baseservice "ngo_portal/internal/api/base/service"
	"ngo_portal/internal/api/middleware"
	"ngo_portal/internal/common"
	"ngo_portal/internal/global"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService manages the admins collection and token issuance.
type AuthService struct {
	*baseservice.BaseServiceMongoImpl[models.Admin]
}

func NewAuthService() *AuthService {
	collection := global.RegistryCollections.MustGet(global.ColNames.Admins)
	return &AuthService{BaseServiceMongoImpl: baseservice.NewBaseService[models.Admin](collection)}
}

// CreateAdmin stores a new admin with a bcrypt password hash.
func (s *AuthService) CreateAdmin(ctx context.Context, username, email, password, fullName string) (models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, common.NewError(common.ErrCodeInternalServer,
			"could not hash password", common.StatusInternalServerError, nil)
	}

	return s.InsertOne(ctx, models.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Permissions:  models.DefaultAdminPermissions(),
	})
}

// Authenticate verifies credentials against username or email and
// stamps lastLoginAt. Unknown accounts and wrong passwords return the
// same error so logins cannot be used to enumerate account names.
func (s *AuthService) Authenticate(ctx context.Context, usernameOrEmail, password string) (models.Admin, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"username": usernameOrEmail},
			{"email": usernameOrEmail},
		},
	}
	admin, err := s.FindOne(ctx, filter)
	if err != nil {
		return models.Admin{}, common.ErrInvalidCredentials
	}
	if !admin.IsActive {
		return models.Admin{}, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return models.Admin{}, common.ErrInvalidCredentials
	}

	update := baseservice.NewUpdateData()
	update.Set["lastLoginAt"] = time.Now().UnixMilli()
	if updated, err := s.UpdateById(ctx, admin.ID, update); err == nil {
		admin = updated
	}

	return admin, nil
}

// IssueTokens signs an access/refresh pair for the admin.
func (s *AuthService) IssueTokens(admin models.Admin) (TokenPair, error) {
	cfg := global.ServerConfig
	now := time.Now()

	access, err := signToken(admin, cfg.JwtSecret, now.Add(time.Duration(cfg.TokenTTLMinutes)*time.Minute))
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := signToken(admin, cfg.JwtRefreshSecret, now.Add(time.Duration(cfg.RefreshTTLHours)*time.Hour))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func signToken(admin models.Admin, secret string, expiresAt time.Time) (string, error) {
	claims := middleware.AdminClaims{
		AdminID:  admin.ID.Hex(),
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer,
			"could not sign token", common.StatusInternalServerError, nil)
	}
	return signed, nil
}

// Refresh validates a refresh token and issues a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, models.Admin, error) {
	claims := &middleware.AdminClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return TokenPair{}, models.Admin{}, common.ErrTokenInvalid
	}

	adminID, err := primitive.ObjectIDFromHex(claims.AdminID)
	if err != nil {
		return TokenPair{}, models.Admin{}, common.ErrTokenInvalid
	}

	admin, err := s.FindOneById(ctx, adminID)
	if err != nil || !admin.IsActive {
		return TokenPair{}, models.Admin{}, common.ErrTokenInvalid
	}

	pair, err := s.IssueTokens(admin)
	return pair, admin, err
}

// ChangePassword verifies the current password and replaces the hash.
func (s *AuthService) ChangePassword(ctx context.Context, adminID primitive.ObjectID, currentPassword, newPassword string) error {
	admin, err := s.FindOneById(ctx, adminID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		return common.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer,
			"could not hash password", common.StatusInternalServerError, nil)
	}

	update := baseservice.NewUpdateData()
	update.Set["passwordHash"] = string(hash)
	_, err = s.UpdateById(ctx, admin.ID, update)
	return err
}
