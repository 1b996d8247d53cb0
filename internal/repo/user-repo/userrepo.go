package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, created_at
        FROM users
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash)
        VALUES ($1, $2)
        RETURNING id, login, password_hash, created_at
    `
	row := r.db.QueryRow(ctx, query, user.Login, user.PasswordHash)

	var created domain.User
	err := row.Scan(&created.ID, &created.Login, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func scanProfile(row pgx.Row) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Role, &p.Zone, &p.Score, &p.PenaltyCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreateProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	query := `
        INSERT INTO user_profiles (user_id, role, zone, score)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, role, zone, score, penalty_count, created_at, updated_at
    `
	created, err := scanProfile(r.db.QueryRow(ctx, query, profile.UserID, profile.Role, profile.Zone, profile.Score))
	if err != nil {
		zap.L().Error("can't create profile", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetProfileByUserID(ctx context.Context, userID int) (*domain.UserProfile, error) {
	query := `
        SELECT id, user_id, role, zone, score, penalty_count, created_at, updated_at
        FROM user_profiles
        WHERE user_id = $1
    `
	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get profile by user", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) GetProfileByID(ctx context.Context, profileID int) (*domain.UserProfile, error) {
	query := `
        SELECT id, user_id, role, zone, score, penalty_count, created_at, updated_at
        FROM user_profiles
        WHERE id = $1
    `
	profile, err := scanProfile(r.db.QueryRow(ctx, query, profileID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// ApplyPenalty lowers the reputation score, floored at zero, and counts the
// penalty. The score never rises here.
func (r *Repository) ApplyPenalty(ctx context.Context, userID int, penalty float64) (*domain.UserProfile, error) {
	query := `
        UPDATE user_profiles
        SET score = GREATEST(score - $2, 0), penalty_count = penalty_count + 1, updated_at = now()
        WHERE user_id = $1
        RETURNING id, user_id, role, zone, score, penalty_count, created_at, updated_at
    `
	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID, penalty))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't apply penalty", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
