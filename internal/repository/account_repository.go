package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dan-tmpa/devops-capstone-project/shared/models"
	"github.com/jmoiron/sqlx"
)

const accountColumns = `id, name, email, address, phone_number`

// AccountWriteRepository handles all state-mutating operations for accounts.
// It operates exclusively against the PostgreSQL write store (source of truth).
type AccountWriteRepository struct {
	db *sqlx.DB
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Create inserts the account and sets account.ID to the id assigned by the
// database. Any ID already present on account is ignored.
func (r *AccountWriteRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (name, email, address, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		account.Name, account.Email, account.Address, account.PhoneNumber,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	account.ID = id
	return nil
}

func (r *AccountWriteRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	err := r.db.GetContext(ctx, &account, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *AccountWriteRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, email = $3, address = $4, phone_number = $5
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.Email, account.Address, account.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return requireRow(result)
}

func (r *AccountWriteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}
