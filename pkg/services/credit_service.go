package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/creditaccount"
	"github.com/weftlabs/weft/ent/creditledger"
	"github.com/weftlabs/weft/pkg/llm"
)

// ErrInsufficientCredits is returned when an account cannot fund a run.
var ErrInsufficientCredits = errors.New("insufficient credits")

// CreditService meters LLM usage against account balances. Every balance
// mutation is row-locked and mirrored by an immutable ledger entry; usage
// deductions are idempotent on llm_response_id.
type CreditService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewCreditService creates a new CreditService
func NewCreditService(client *ent.Client) *CreditService {
	return &CreditService{
		client: client,
		logger: slog.With("component", "credit_service"),
	}
}

// round2 keeps stored dollar amounts at cent precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GetAccount retrieves a credit account by ID
func (s *CreditService) GetAccount(ctx context.Context, accountID string) (*ent.CreditAccount, error) {
	acct, err := s.client.CreditAccount.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get credit account: %w", err)
	}
	return acct, nil
}

// GetOrCreateAccount returns the user's account, creating a zero-balance
// free-tier account on first sight.
func (s *CreditService) GetOrCreateAccount(_ context.Context, userID string) (*ent.CreditAccount, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	acct, err := s.client.CreditAccount.Query().
		Where(creditaccount.UserIDEQ(userID)).
		Only(ctx)
	if err == nil {
		return acct, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query credit account: %w", err)
	}

	acct, err = s.client.CreditAccount.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the row exists now.
			return s.client.CreditAccount.Query().
				Where(creditaccount.UserIDEQ(userID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create credit account: %w", err)
	}
	return acct, nil
}

// CheckAndReserveCredits gates a runner iteration. The reservation is a
// correlation token, not a hold: the real deduction lands with the
// llm_response_end billing hook, so the only requirement here is a
// positive balance. On denial the second value carries the gate's reason
// for the stopped-status chunk.
func (s *CreditService) CheckAndReserveCredits(ctx context.Context, accountID string) (bool, string, error) {
	if accountID == "" {
		return false, "", NewValidationError("account_id", "required")
	}

	acct, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return false, "", err
	}

	if acct.Balance <= 0 {
		return false, "account balance exhausted", nil
	}
	return true, uuid.New().String(), nil
}

// CheckModelAccess verifies the account can be billed for a run of the
// model. Unknown models meter at the conservative default rate, so the
// gate is the balance itself.
func (s *CreditService) CheckModelAccess(ctx context.Context, accountID, model string) error {
	if model == "" {
		return NewValidationError("model", "required")
	}

	canRun, _, err := s.CheckAndReserveCredits(ctx, accountID)
	if err != nil {
		return err
	}
	if !canRun {
		return ErrInsufficientCredits
	}
	return nil
}

// DeductUsageRequest carries the billing hook parameters for one completion.
type DeductUsageRequest struct {
	AccountID        string
	ThreadID         string
	LLMResponseID    string
	Model            string
	PromptTokens     int
	CompletionTokens int
	CacheReadTokens  int
	CacheWriteTokens int
}

// DeductUsage charges one completion's cost against the account inside a
// row-locked transaction. Replays of the same llm_response_id are absorbed
// by the ledger's partial unique index and deduct nothing.
func (s *CreditService) DeductUsage(_ context.Context, req DeductUsageRequest) (float64, error) {
	if req.AccountID == "" {
		return 0, NewValidationError("account_id", "required")
	}
	if req.LLMResponseID == "" {
		return 0, NewValidationError("llm_response_id", "required")
	}

	cost := round2(llm.CostUSD(req.Model, req.PromptTokens, req.CompletionTokens, req.CacheReadTokens, req.CacheWriteTokens))

	// Terminal accounting write; never tied to a cancellable run context.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	acct, err := tx.CreditAccount.Query().
		Where(creditaccount.IDEQ(req.AccountID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to lock credit account: %w", err)
	}

	newBalance := round2(acct.Balance - cost)

	_, err = tx.CreditLedger.Create().
		SetID(uuid.New().String()).
		SetAccountID(acct.ID).
		SetAmount(-cost).
		SetBalanceAfter(newBalance).
		SetType(creditledger.TypeDeduction).
		SetLlmResponseID(req.LLMResponseID).
		SetNillableThreadID(nilIfEmpty(req.ThreadID)).
		SetNillableModel(nilIfEmpty(req.Model)).
		SetDescription(fmt.Sprintf("llm usage %s: %d prompt + %d completion tokens", req.Model, req.PromptTokens, req.CompletionTokens)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Already deducted for this response; at-least-once delivery
			// of the billing hook makes this a normal outcome.
			s.logger.Debug("duplicate usage deduction skipped",
				"account_id", req.AccountID,
				"llm_response_id", req.LLMResponseID)
			return 0, nil
		}
		return 0, fmt.Errorf("failed to write ledger entry: %w", err)
	}

	if err := tx.CreditAccount.UpdateOneID(acct.ID).SetBalance(newBalance).Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit deduction: %w", err)
	}

	s.logger.Debug("usage deducted",
		"account_id", req.AccountID,
		"model", req.Model,
		"cost_usd", cost,
		"balance", newBalance)
	return cost, nil
}

// GrantCredits adds funds to an account with a ledger trail.
func (s *CreditService) GrantCredits(_ context.Context, accountID string, amount float64, description string) error {
	if accountID == "" {
		return NewValidationError("account_id", "required")
	}
	if amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	acct, err := tx.CreditAccount.Query().
		Where(creditaccount.IDEQ(accountID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock credit account: %w", err)
	}

	amount = round2(amount)
	newBalance := round2(acct.Balance + amount)

	_, err = tx.CreditLedger.Create().
		SetID(uuid.New().String()).
		SetAccountID(acct.ID).
		SetAmount(amount).
		SetBalanceAfter(newBalance).
		SetType(creditledger.TypeGrant).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write grant entry: %w", err)
	}

	err = tx.CreditAccount.UpdateOneID(acct.ID).
		SetBalance(newBalance).
		SetLastGrantDate(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit grant: %w", err)
	}
	return nil
}

// ListLedger returns an account's ledger entries, newest first.
func (s *CreditService) ListLedger(ctx context.Context, accountID string, limit int) ([]*ent.CreditLedger, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	entries, err := s.client.CreditLedger.Query().
		Where(creditledger.AccountIDEQ(accountID)).
		Order(ent.Desc(creditledger.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}
	return entries, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
