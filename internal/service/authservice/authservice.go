package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
	GetProfileByUserID(ctx context.Context, userID int) (*domain.UserProfile, error)
}

type Wallets interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrProfileNotFound    = errors.New("profile not found")
)

type Service struct {
	userRepo    Repo
	wallets     Wallets
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	txManager   TXManager
}

func New(repo Repo, wallets Wallets, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, txManager TXManager) *Service {
	return &Service{
		userRepo:    repo,
		wallets:     wallets,
		hashService: hashService,
		jwtService:  jwtService,
		txManager:   txManager,
	}
}

func validRole(role string) bool {
	switch role {
	case domain.RolePersona, domain.RoleConsorcio, domain.RoleOficio:
		return true
	}
	return false
}

// Register creates the user with their profile and wallet in one transaction,
// so a signup never ends up half-provisioned.
func (s *Service) Register(ctx context.Context, login, password, role, zone string) (*domain.User, *domain.UserProfile, error) {
	if !validRole(role) {
		return nil, nil, ErrInvalidRole
	}

	var (
		user    *domain.User
		profile *domain.UserProfile
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existingUser, err := s.userRepo.FindByLogin(ctx, login)
		if err != nil {
			zap.L().Error("can't find user: ", zap.Error(err))
			return err
		}
		if existingUser != nil {
			zap.L().Info("user already exists, login: ", zap.String("login", login))
			return ErrLoginTaken
		}
		hashedPassword, err := s.hashService.HashPassword(password)
		if err != nil {
			zap.L().Error("can't hash password: ", zap.Error(err))
			return err
		}
		user, err = s.userRepo.Create(ctx, &domain.User{
			Login:        login,
			PasswordHash: hashedPassword,
		})
		if err != nil {
			zap.L().Error("can't create user: ", zap.Error(err))
			return err
		}

		profile, err = s.userRepo.CreateProfile(ctx, &domain.UserProfile{
			UserID: user.ID,
			Role:   role,
			Zone:   zone,
			Score:  5,
		})
		if err != nil {
			zap.L().Error("can't create profile: ", zap.Error(err))
			return err
		}

		if _, err = s.wallets.GetOrCreateWallet(ctx, user.ID); err != nil {
			zap.L().Error("can't create wallet: ", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login), zap.String("role", role))
	return user, profile, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.UserProfile, error) {
	profile, err := s.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *Service) GenerateToken(ctx context.Context, userID int) (string, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, profile.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
