package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	query := r.DB.Rebind(`SELECT id, username, password, role FROM users WHERE username = ?`)
	if err := r.DB.GetContext(ctx, &u, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepository) Create(ctx context.Context, u *model.User) error {
	query := r.DB.Rebind(`INSERT INTO users (username, password, role) VALUES (?, ?, ?) RETURNING id`)
	if err := r.DB.GetContext(ctx, &u.ID, query, u.Username, u.Password, u.Role); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
