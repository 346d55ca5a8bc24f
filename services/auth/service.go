package auth

import (
	"context"
	"fmt"
	"regexp"
	"time"

	accountRepo "beautymatch/database/repository/account"
	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
	"beautymatch/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultAuthService is the production AuthService implementation.
// Tokens are plain JWTs; the Redis auth cache holds the hash of each
// live token so logout can revoke it.
type DefaultAuthService struct {
	Accounts    accountRepo.AccountRepository
	Profiles    profileRepo.ProfileRepository
	AuthCache   *redis.Client
	MaxFailures int
	FailWindow  time.Duration
}

// NewDefaultAuthService wires the auth service with its collaborators.
func NewDefaultAuthService(accounts accountRepo.AccountRepository, profiles profileRepo.ProfileRepository, authCache *redis.Client, maxFailures int, failWindow time.Duration) *DefaultAuthService {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if failWindow <= 0 {
		failWindow = 15 * time.Minute
	}
	return &DefaultAuthService{
		Accounts:    accounts,
		Profiles:    profiles,
		AuthCache:   authCache,
		MaxFailures: maxFailures,
		FailWindow:  failWindow,
	}
}

// ValidateRegistration checks the registration inputs against the
// caller-facing contract. Exposed so handlers and tests can exercise
// validation without a store.
func ValidateRegistration(email, password string, role models.Role) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < 8 {
		return ErrWeakPassword
	}
	if !role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// Register creates a new account. For professionals a shell profile is
// written to the store so onboarding can fill it in field-by-field.
func (s *DefaultAuthService) Register(ctx context.Context, email, password, name string, role models.Role) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if err := ValidateRegistration(email, password, role); err != nil {
		return nil, err
	}

	existing, err := s.Accounts.GetByEmail(email)
	if err != nil {
		logger.Error("Register: failed to check existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	account := &models.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
	}
	if err := s.Accounts.Create(account); err != nil {
		logger.Error("Register: failed to create account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if role == models.RoleProfessional {
		shell := &models.ProfessionalProfile{
			ID:           account.ID,
			Email:        email,
			Name:         name,
			Availability: models.AvailabilityUnavailable,
		}
		if err := s.Profiles.Create(shell); err != nil {
			logger.Error("Register: failed to create shell profile", zap.String("id", account.ID), zap.Error(err))
			return nil, fmt.Errorf("registration failed, please try again")
		}
	}

	token, err := s.issueToken(ctx, account)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		ID:    account.ID,
		Token: token,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	}, nil
}

// Login verifies credentials and issues a session token. Repeated
// failures for the same email within the window yield ErrRateLimited.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	failKey := utils.LoginFailPrefix + email
	if fails, err := s.AuthCache.Get(ctx, failKey).Int(); err == nil && fails >= s.MaxFailures {
		return nil, ErrRateLimited
	}

	account, err := s.Accounts.GetByEmail(email)
	if err != nil {
		logger.Error("Login: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil {
		s.recordFailure(ctx, failKey)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.recordFailure(ctx, failKey)
		return nil, ErrInvalidCredentials
	}

	if err := s.AuthCache.Del(ctx, failKey).Err(); err != nil {
		logger.Warn("Login: failed to clear failure counter", zap.Error(err))
	}

	token, err := s.issueToken(ctx, account)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		ID:           account.ID,
		Token:        token,
		Email:        account.Email,
		Name:         account.Name,
		Role:         account.Role,
		ProfileImage: account.ProfileImage,
	}, nil
}

// Logout deletes the cached token hash; the auth middleware rejects the
// token from then on.
func (s *DefaultAuthService) Logout(ctx context.Context, accountID string) error {
	cacheKey := utils.AuthCachePrefix + accountID
	if err := s.AuthCache.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("failed to revoke session for account %s: %w", accountID, err)
	}
	return nil
}

// GetAccount returns the account for the given id.
func (s *DefaultAuthService) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	return s.Accounts.GetByID(accountID)
}

// UpdateFCMToken stores the device push token for an account.
func (s *DefaultAuthService) UpdateFCMToken(ctx context.Context, accountID, token string) error {
	return s.Accounts.SetFCMToken(accountID, token)
}

func (s *DefaultAuthService) issueToken(ctx context.Context, account *models.Account) (string, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, string(account.Role), tokenDuration)
	if err != nil {
		return "", fmt.Errorf("authentication failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + account.ID
	if err := s.AuthCache.Set(ctx, cacheKey, utils.HashToken(token), tokenDuration).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *DefaultAuthService) recordFailure(ctx context.Context, failKey string) {
	logger := utils.GetLogger()
	fails, err := s.AuthCache.Incr(ctx, failKey).Result()
	if err != nil {
		logger.Warn("Login: failed to record failure", zap.Error(err))
		return
	}
	if fails == 1 {
		if err := s.AuthCache.Expire(ctx, failKey, s.FailWindow).Err(); err != nil {
			logger.Warn("Login: failed to set failure window", zap.Error(err))
		}
	}
}
