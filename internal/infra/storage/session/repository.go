package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/pkg/psqlbuilder"
)

// Repository репозиторий для работы с сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"token",
			"access_token",
			"profile_name",
			"email",
			"venue_manager",
			"avatar_url",
			"avatar_alt",
		).
		Values(
			session.Token,
			session.AccessToken,
			session.Name,
			session.Email,
			session.VenueManager,
			session.AvatarURL,
			session.AvatarAlt,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	return session, nil
}

// GetByToken получает сессию по токену шлюза
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select(
		"token",
		"access_token",
		"profile_name",
		"email",
		"venue_manager",
		"avatar_url",
		"avatar_alt",
		"created_at",
	).
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var (
		session   domain.Session
		createdAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&session.Token,
		&session.AccessToken,
		&session.Name,
		&session.Email,
		&session.VenueManager,
		&session.AvatarURL,
		&session.AvatarAlt,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetByToken - scan row: %v", ErrScanRow, err)
	}

	session.CreatedAt = createdAt.Time
	return &session, nil
}

// Delete удаляет сессию по токену
func (r *Repository) Delete(ctx context.Context, token string) error {
	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteByProfile удаляет все сессии профиля
// Используется при повторном логине, чтобы не копить устаревшие токены
func (r *Repository) DeleteByProfile(ctx context.Context, profileName string) error {
	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"profile_name": profileName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByProfile - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByProfile - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
