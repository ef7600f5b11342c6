package service

import (
	"context"
	"errors"
	"time"

	"storefront/config"
	"storefront/internal/core"
	"storefront/internal/database/mongodb/model"
	mongoRepo "storefront/internal/database/mongodb/repository"
	redisRepo "storefront/internal/database/redis/repository"
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// 登入限流：同一信箱 15 分鐘內最多 10 次嘗試
const (
	loginAttemptWindowSeconds = 900
	loginAttemptLimit         = 10
)

type AuthService struct {
	logger        *zap.Logger
	trace         *telemetry.Trace
	config        *config.Configuration
	userRepo      *mongoRepo.UserRepository
	loginAttempts *redisRepo.LoginAttemptRepository
	blacklist     *redisRepo.TokenBlacklistRepository
}

func NewAuthService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	userRepo *mongoRepo.UserRepository,
	loginAttempts *redisRepo.LoginAttemptRepository,
	blacklist *redisRepo.TokenBlacklistRepository,
) *AuthService {
	return &AuthService{
		logger:        logger,
		trace:         trace,
		config:        config,
		userRepo:      userRepo,
		loginAttempts: loginAttempts,
		blacklist:     blacklist,
	}
}

// Register 開放註冊；新用戶固定 customer 角色，待升級
func (s *AuthService) Register(ctx context.Context, payload *dto.RegisterDto) (*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if existing, err := s.userRepo.FindByEmail(ctx, payload.Email); err == nil && existing != nil {
		return nil, cErr.Conflict("email already registered")
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cErr.DatabaseError("database FindByEmail error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, cErr.InternalServer("password hash error")
	}

	user := &model.User{
		ID:          primitive.NewObjectID(),
		DisplayName: payload.DisplayName,
		Email:       payload.Email,
		Password:    string(hash),
		Role:        core.RoleCustomer,
		Status:      core.StatusActive,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("email already registered")
		}
		return nil, cErr.DatabaseError("database CreateUser error")
	}
	return created, nil
}

// Login 驗證帳密並簽發 token；錯誤訊息不區分帳號不存在與密碼錯誤
func (s *AuthService) Login(ctx context.Context, payload *dto.LoginDto) (*dto.TokenResponseDto, *model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, _, err := s.loginAttempts.Consume(ctx, payload.Email, loginAttemptWindowSeconds, loginAttemptLimit); err != nil {
		if errors.Is(err, redisRepo.ErrTooManyAttempts) {
			return nil, nil, cErr.RateLimitExceeded("too many login attempts")
		}
		// Redis 故障時放行登入，只記 log
		s.logger.Warn("login attempt limiter unavailable", zap.Error(err))
	}

	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, cErr.Unauthorized("invalid credentials")
		}
		return nil, nil, cErr.DatabaseError("database FindByEmail error")
	}
	if user.DeletedAt != nil || user.Status == core.StatusDeleted {
		return nil, nil, cErr.Unauthorized("invalid credentials")
	}
	if user.Status == core.StatusBlocked || user.Status == core.StatusSuspended {
		return nil, nil, cErr.Forbidden("account is not active")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return nil, nil, cErr.Unauthorized("invalid credentials")
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, cErr.InternalServer("token signing error")
	}

	_ = s.loginAttempts.Reset(ctx, payload.Email)
	_ = s.userRepo.UpdateLastSeen(ctx, user.ID, time.Now().UTC())
	return tokens, user, nil
}

// Refresh 以 refresh token 換發新一組 token；舊 refresh token 立即列入黑名單
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	claims, err := s.ParseToken(refreshToken)
	if err != nil {
		return nil, cErr.InvalidSession("invalid refresh token")
	}
	blacklisted, err := s.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		s.logger.Warn("token blacklist unavailable", zap.Error(err))
	} else if blacklisted {
		return nil, cErr.InvalidSession("refresh token revoked")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, cErr.InvalidSession("invalid refresh token subject")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.InvalidSession("user no longer exists")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	if user.Status != core.StatusActive {
		return nil, cErr.Forbidden("account is not active")
	}

	// 舊 token 剩餘效期內不可重複使用
	if claims.ExpiresAt != nil {
		_ = s.blacklist.Add(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	}
	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, cErr.InternalServer("token signing error")
	}
	return tokens, nil
}

// Logout 將 access token 列入黑名單直到其自然過期
func (s *AuthService) Logout(ctx context.Context, claims *core.Claims) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if claims.ExpiresAt == nil {
		return nil
	}
	if err := s.blacklist.Add(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return cErr.InternalServer("token revoke error")
	}
	return nil
}

// ParseToken 驗證簽章與效期並回傳 claims
func (s *AuthService) ParseToken(tokenString string) (*core.Claims, error) {
	claims := &core.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// IsRevoked 查 access token 是否已登出
func (s *AuthService) IsRevoked(ctx context.Context, tokenID string) bool {
	found, err := s.blacklist.Contains(ctx, tokenID)
	if err != nil {
		s.logger.Warn("token blacklist unavailable", zap.Error(err))
		return false
	}
	return found
}

func (s *AuthService) issueTokens(user *model.User) (*dto.TokenResponseDto, error) {
	now := time.Now().UTC()
	accessTTL := time.Duration(s.config.JWT.AccessTTL) * time.Second
	refreshTTL := time.Duration(s.config.JWT.RefreshTTL) * time.Second

	sign := func(ttl time.Duration) (string, error) {
		claims := &core.Claims{
			UserID: user.ID.Hex(),
			Email:  user.Email,
			Role:   user.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				Issuer:    s.config.JWT.Issuer,
				Subject:   user.ID.Hex(),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			},
		}
		return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWT.Secret))
	}

	accessToken, err := sign(accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := sign(refreshTTL)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponseDto{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
