package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID           int    `json:"id"`
	Login        string `json:"login"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	FlowUnits    string `json:"flow_units"`
}

// Design is a saved input set. Payload holds the raw sizing request so the
// client can reload it into the form; results are always recomputed fresh.
type Design struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, organization, flowUnits string) error

	SaveDesign(ctx context.Context, userID int, name string, payload []byte) (int, error)
	ListDesigns(ctx context.Context, userID int) ([]Design, error)
	GetDesign(ctx context.Context, userID, id int) (Design, error)
	DeleteDesign(ctx context.Context, userID, id int) error
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
	query := "SELECT id, login, email, COALESCE(organization, ''), COALESCE(flow_units, 'm3/day') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Login, &p.Email, &p.Organization, &p.FlowUnits)
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, organization, flowUnits string) error {
	query := "UPDATE users SET organization=$2, flow_units=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, organization, flowUnits)
	return err
}

func (r *PostgresRepository) SaveDesign(ctx context.Context, userID int, name string, payload []byte) (int, error) {
	var id int
	query := "INSERT INTO designs (user_id, name, payload) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, payload).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListDesigns(ctx context.Context, userID int) ([]Design, error) {
	query := "SELECT id, name, created_at FROM designs WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []Design
	for rows.Next() {
		var d Design
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, rows.Err()
}

func (r *PostgresRepository) GetDesign(ctx context.Context, userID, id int) (Design, error) {
	var d Design
	query := "SELECT id, name, payload, created_at FROM designs WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&d.ID, &d.Name, &d.Payload, &d.CreatedAt)
	return d, err
}

func (r *PostgresRepository) DeleteDesign(ctx context.Context, userID, id int) error {
	query := "DELETE FROM designs WHERE user_id=$1 AND id=$2"
	_, err := r.db.ExecContext(ctx, query, userID, id)
	return err
}
