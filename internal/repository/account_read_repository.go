package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dan-tmpa/devops-capstone-project/shared/models"
	"github.com/jmoiron/sqlx"
)

const accountViewKeyPrefix = "account:view:"

// AccountCache is the read-model cache in front of PostgreSQL.
// shared/redis.ViewCache[models.Account] satisfies it.
type AccountCache interface {
	Get(ctx context.Context, key string) (*models.Account, bool)
	Set(ctx context.Context, key string, value *models.Account)
	Delete(ctx context.Context, key string)
}

// AccountReadRepository handles all read operations for accounts.
// Single-account reads try the cache first, fall back to PostgreSQL and warm
// the cache on every cold read. A nil cache disables caching.
type AccountReadRepository struct {
	db    *sqlx.DB
	cache AccountCache
}

func NewAccountReadRepository(db *sqlx.DB, cache AccountCache) *AccountReadRepository {
	return &AccountReadRepository{db: db, cache: cache}
}

func accountViewKey(id int64) string {
	return accountViewKeyPrefix + strconv.FormatInt(id, 10)
}

// GetByID returns an account, trying the cache first then PostgreSQL.
func (r *AccountReadRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	if r.cache != nil {
		if account, ok := r.cache.Get(ctx, accountViewKey(id)); ok {
			return account, nil
		}
	}

	var account models.Account
	err := r.db.GetContext(ctx, &account, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	r.CacheAccount(ctx, &account)
	return &account, nil
}

// List returns every account ordered by id. It always reads PostgreSQL.
func (r *AccountReadRepository) List(ctx context.Context) ([]models.Account, error) {
	accounts := []models.Account{}
	if err := r.db.SelectContext(ctx, &accounts, `SELECT `+accountColumns+` FROM accounts ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// CacheAccount stores or refreshes the cached copy of an account after a
// cold read.
func (r *AccountReadRepository) CacheAccount(ctx context.Context, account *models.Account) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, accountViewKey(account.ID), account)
}

// InvalidateAccount drops the cached copy of an account. The command service
// calls it after every create, update and delete.
func (r *AccountReadRepository) InvalidateAccount(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, accountViewKey(id))
}
