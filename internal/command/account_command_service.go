package command

import (
	"context"

	"github.com/dan-tmpa/devops-capstone-project/shared/cqrs"
	"github.com/dan-tmpa/devops-capstone-project/shared/events"
	"github.com/dan-tmpa/devops-capstone-project/shared/models"
	"go.uber.org/zap"
)

// AccountWriter is the write store. Implementations return
// models.ErrAccountNotFound for unknown ids.
type AccountWriter interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
}

// AccountViewCache is the read-model cache. Writes only drop cached views;
// reads refill them, so a write racing a delete cannot restore a removed
// account.
type AccountViewCache interface {
	InvalidateAccount(ctx context.Context, id int64)
}

type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountCommandService writes account state and keeps the read model in sync.
// views and publisher are optional.
type AccountCommandService struct {
	writeRepo AccountWriter
	views     AccountViewCache
	publisher EventPublisher
	log       *zap.Logger
}

func NewAccountCommandService(
	writeRepo AccountWriter,
	views AccountViewCache,
	publisher EventPublisher,
	log *zap.Logger,
) *AccountCommandService {
	return &AccountCommandService{
		writeRepo: writeRepo,
		views:     views,
		publisher: publisher,
		log:       log.Named("account_commands"),
	}
}

func (s *AccountCommandService) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) {
	account := &models.Account{
		Name:        cmd.Name,
		Email:       cmd.Email,
		Address:     cmd.Address,
		PhoneNumber: cmd.PhoneNumber,
	}
	if err := s.writeRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	s.invalidate(ctx, account.ID)
	s.publish(ctx, events.AccountCreated, events.AccountCreatedEvent{
		AccountID: account.ID,
		Name:      account.Name,
	})
	return account, nil
}

// UpdateAccount overwrites every business field of an existing account. The
// stored id is kept.
func (s *AccountCommandService) UpdateAccount(ctx context.Context, cmd cqrs.UpdateAccountCommand) (*models.Account, error) {
	account, err := s.writeRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	account.Name = cmd.Name
	account.Email = cmd.Email
	account.Address = cmd.Address
	account.PhoneNumber = cmd.PhoneNumber
	if err := s.writeRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	s.invalidate(ctx, account.ID)
	s.publish(ctx, events.AccountUpdated, events.AccountUpdatedEvent{
		AccountID: account.ID,
		Name:      account.Name,
	})
	return account, nil
}

func (s *AccountCommandService) DeleteAccount(ctx context.Context, cmd cqrs.DeleteAccountCommand) error {
	if err := s.writeRepo.Delete(ctx, cmd.ID); err != nil {
		return err
	}
	s.invalidate(ctx, cmd.ID)
	s.publish(ctx, events.AccountDeleted, events.AccountDeletedEvent{AccountID: cmd.ID})
	return nil
}

func (s *AccountCommandService) invalidate(ctx context.Context, id int64) {
	if s.views != nil {
		s.views.InvalidateAccount(ctx, id)
	}
}

// publish failures never fail the command; the write has already committed.
func (s *AccountCommandService) publish(ctx context.Context, eventType string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.AccountEventsStream, eventType, data); err != nil {
		s.log.Warn("Failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
