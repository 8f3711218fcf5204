package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// Design is a saved specimen parameter set. Params keeps the raw JSON so
// the storage layer stays independent of the geometry types.
type Design struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Name      string          `json:"name"`
	Params    json.RawMessage `json:"params"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error)

	CreateDesign(ctx context.Context, userID int, name string, params json.RawMessage) (int, error)
	ListDesigns(ctx context.Context, userID int) ([]Design, error)
	GetDesign(ctx context.Context, userID, designID int) (Design, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string
	query := "SELECT id, password FROM users WHERE login=$1"
	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	if _, err := r.db.ExecContext(ctx, query, id, login, description); err != nil {
		return Profile{}, err
	}
	return r.GetProfileByID(ctx, id)
}

func (r *PostgresRepository) CreateDesign(ctx context.Context, userID int, name string, params json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO designs (user_id, name, params) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, params).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListDesigns(ctx context.Context, userID int) ([]Design, error) {
	query := "SELECT id, user_id, name, params, created_at FROM designs WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []Design
	for rows.Next() {
		var d Design
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Params, &d.CreatedAt); err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, rows.Err()
}

func (r *PostgresRepository) GetDesign(ctx context.Context, userID, designID int) (Design, error) {
	var d Design
	query := "SELECT id, user_id, name, params, created_at FROM designs WHERE id=$1 AND user_id=$2"
	err := r.db.QueryRowContext(ctx, query, designID, userID).Scan(&d.ID, &d.UserID, &d.Name, &d.Params, &d.CreatedAt)
	return d, err
}
