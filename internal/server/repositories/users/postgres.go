package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

const (
	pgUniqueViolation   = "23505"
	pgInvalidTextFormat = "22P02"
)

var userColumns = []string{
	"id", "username", "email", "full_name", "password_hash",
	"avatar_key", "cover_image_key", "refresh_token", "created_at", "updated_at",
}

type PostgresRepository struct {
	db dbx.DBTX
	qb sq.StatementBuilderType
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query, args, err := r.qb.Insert("users").
		Columns("username", "email", "full_name", "password_hash", "avatar_key", "cover_image_key").
		Values(user.UserName, user.Email, user.FullName, user.PasswordHash, user.AvatarKey, user.CoverImageKey).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	var cond sq.Or
	if username != "" {
		cond = append(cond, sq.Eq{"username": username})
	}
	if email != "" {
		cond = append(cond, sq.Eq{"email": email})
	}
	if len(cond) == 0 {
		return false, nil
	}

	query, args, err := r.qb.Select("1").From("users").Where(cond).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return r.getOne(ctx, sq.Or{sq.Eq{"username": identifier}, sq.Eq{"email": identifier}})
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *PostgresRepository) getOne(ctx context.Context, where sq.Sqlizer) (*models.User, error) {
	query, args, err := r.qb.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) SetRefreshToken(ctx context.Context, id string, token *string) error {
	query, args, err := r.qb.Update("users").
		Set("refresh_token", token).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	n, err := r.exec(ctx, query, args)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) SwapRefreshToken(ctx context.Context, id, current, next string) (bool, error) {
	query, args, err := r.qb.Update("users").
		Set("refresh_token", next).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"refresh_token": current}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	n, err := r.exec(ctx, query, args)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PostgresRepository) SwapPasswordHash(ctx context.Context, id, current, next string) (bool, error) {
	query, args, err := r.qb.Update("users").
		Set("password_hash", next).
		Set("refresh_token", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"password_hash": current}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	n, err := r.exec(ctx, query, args)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PostgresRepository) UpdateDetails(ctx context.Context, id string, fullName, email *string) (*models.User, error) {
	b := r.qb.Update("users").Set("updated_at", sq.Expr("now()"))
	if fullName != nil {
		b = b.Set("full_name", *fullName)
	}
	if email != nil {
		b = b.Set("email", *email)
	}
	return r.updateReturning(ctx, b.Where(sq.Eq{"id": id}))
}

func (r *PostgresRepository) SetImageKey(ctx context.Context, id string, kind models.ImageKind, key string) (*models.User, error) {
	column := kind.Column()
	if column == "" {
		return nil, fmt.Errorf("unknown image kind %q", kind)
	}
	b := r.qb.Update("users").
		Set(column, key).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	return r.updateReturning(ctx, b)
}

func (r *PostgresRepository) updateReturning(ctx context.Context, b sq.UpdateBuilder) (*models.User, error) {
	query, args, err := b.Suffix("RETURNING " + strings.Join(userColumns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var refresh sql.NullString
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.FullName, &u.PasswordHash,
		&u.AvatarKey, &u.CoverImageKey, &refresh, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	if refresh.Valid {
		u.RefreshToken = &refresh.String
	}
	return u, nil
}

// mapError translates driver errors into the common sentinels. A malformed
// UUID can never match a row, so it is reported as not found.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrorConflict, pgErr.ConstraintName)
		case pgInvalidTextFormat:
			return common.ErrorNotFound
		}
	}
	return fmt.Errorf("db error: %w", err)
}
