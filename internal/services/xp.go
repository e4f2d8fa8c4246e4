package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/repositories"
)

//go:generate mockgen -source=xp.go -destination=xp_mock_test.go -package=services

// XPStore persists balances and the ledger.
type XPStore interface {
	Debit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
	Credit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
	AppendLedger(ctx context.Context, e *models.LedgerEntry) error
	ListLedger(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// XPLedger is what other services need from XPService.
type XPLedger interface {
	Debit(ctx context.Context, userID uuid.UUID, amount int64, reason, refID string) (*models.LedgerEntry, error)
	Credit(ctx context.Context, userID uuid.UUID, amount int64, reason, refID string) (*models.LedgerEntry, error)
	Publish(ctx context.Context, entries ...*models.LedgerEntry)
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// XPService mutates XP balances. Debit and Credit join the caller's
// transaction; call Publish once it has committed.
type XPService struct {
	store       XPStore
	kafkaWriter KafkaWriter
}

// NewXPService creates a new XPService. kafkaWriter may be nil.
func NewXPService(store XPStore, kafkaWriter KafkaWriter) *XPService {
	return &XPService{store: store, kafkaWriter: kafkaWriter}
}

// Debit charges amount and appends a ledger entry. A zero amount is a no-op
// returning a nil entry. On a low balance it returns *InsufficientXPError.
func (s *XPService) Debit(ctx context.Context, userID uuid.UUID, amount int64, reason, refID string) (*models.LedgerEntry, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: negative debit", ErrInvalidInput)
	}
	if amount == 0 {
		return nil, nil
	}

	balance, err := s.store.Debit(ctx, userID, amount)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrInsufficientBalance):
			return nil, &InsufficientXPError{Required: amount, Current: balance}
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrUserNotFound
		}
		logger.FromContext(ctx).Errorw("failed to debit xp", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	return s.appendLedger(ctx, userID, -amount, reason, refID, balance)
}

// Credit adds amount and appends a ledger entry. A zero amount is a no-op.
func (s *XPService) Credit(ctx context.Context, userID uuid.UUID, amount int64, reason, refID string) (*models.LedgerEntry, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: negative credit", ErrInvalidInput)
	}
	if amount == 0 {
		return nil, nil
	}

	balance, err := s.store.Credit(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.FromContext(ctx).Errorw("failed to credit xp", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	return s.appendLedger(ctx, userID, amount, reason, refID, balance)
}

func (s *XPService) appendLedger(ctx context.Context, userID uuid.UUID, delta int64, reason, refID string, balance int64) (*models.LedgerEntry, error) {
	entry := &models.LedgerEntry{
		UserID:       userID,
		Delta:        delta,
		Reason:       reason,
		BalanceAfter: balance,
	}
	if refID != "" {
		entry.RefID = &refID
	}

	if err := s.store.AppendLedger(ctx, entry); err != nil {
		logger.FromContext(ctx).Errorw("failed to append ledger", "userID", userID, "reason", reason, "error", err)
		return nil, err
	}
	return entry, nil
}

// Balance returns the user's XP.
func (s *XPService) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	balance, err := s.store.Balance(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return 0, ErrUserNotFound
	}
	return balance, err
}

// Ledger returns up to limit of the user's most recent balance changes.
func (s *XPService) Ledger(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.store.ListLedger(ctx, userID, limit)
}

// Publish sends committed ledger entries to Kafka. Nil entries are skipped
// and failures are only logged.
func (s *XPService) Publish(ctx context.Context, entries ...*models.LedgerEntry) {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		s.publish(ctx, entry)
	}
}

func (s *XPService) publish(ctx context.Context, entry *models.LedgerEntry) {
	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Warnw("Kafka writer not configured, skipping publishing", "ledger_id", entry.ID)
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal ledger entry for Kafka", "ledger_id", entry.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entry.UserID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish ledger entry to Kafka", "ledger_id", entry.ID, "error", err)
	} else {
		logger.FromContext(ctx).Infow("Ledger entry published to Kafka", "ledger_id", entry.ID, "delta", entry.Delta)
	}
}
