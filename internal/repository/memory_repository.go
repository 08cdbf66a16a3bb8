package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dan-tmpa/devops-capstone-project/shared/models"
)

// MemoryAccountRepository keeps accounts in process memory. It serves both
// the write and read side and is safe for concurrent use. Ids start at 1 and
// are never reused.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]models.Account
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		nextID:   1,
		accounts: make(map[int64]models.Account),
	}
}

func (r *MemoryAccountRepository) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.ID = r.nextID
	r.nextID++
	r.accounts[account.ID] = *account
	return nil
}

func (r *MemoryAccountRepository) GetByID(_ context.Context, id int64) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return &account, nil
}

func (r *MemoryAccountRepository) List(_ context.Context) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *MemoryAccountRepository) Update(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return models.ErrAccountNotFound
	}
	r.accounts[account.ID] = *account
	return nil
}

func (r *MemoryAccountRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return models.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}
