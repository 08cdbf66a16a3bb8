package query

import (
	"context"

	"github.com/dan-tmpa/devops-capstone-project/shared/cqrs"
	"github.com/dan-tmpa/devops-capstone-project/shared/models"
)

// AccountReader is the read store. GetByID returns models.ErrAccountNotFound
// for unknown ids.
type AccountReader interface {
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
}

type AccountQueryService struct {
	readRepo AccountReader
}

func NewAccountQueryService(readRepo AccountReader) *AccountQueryService {
	return &AccountQueryService{readRepo: readRepo}
}

func (s *AccountQueryService) GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.Account, error) {
	return s.readRepo.GetByID(ctx, q.ID)
}

// ListAccounts never returns a nil slice so an empty store serialises as [].
func (s *AccountQueryService) ListAccounts(ctx context.Context, _ cqrs.ListAccountsQuery) ([]models.Account, error) {
	accounts, err := s.readRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}
