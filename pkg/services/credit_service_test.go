package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent/creditledger"
	testdb "github.com/weftlabs/weft/test/database"
)

func TestCreditService_Accounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCreditService(client.Client)
	ctx := context.Background()

	t.Run("creates a zero-balance free account on first sight", func(t *testing.T) {
		acct, err := service.GetOrCreateAccount(ctx, "user-1")
		require.NoError(t, err)
		assert.NotEmpty(t, acct.ID)
		assert.Equal(t, "user-1", acct.UserID)
		assert.Zero(t, acct.Balance)
		assert.Equal(t, "free", acct.Tier)
	})

	t.Run("returns the same account on later calls", func(t *testing.T) {
		first, err := service.GetOrCreateAccount(ctx, "user-2")
		require.NoError(t, err)
		second, err := service.GetOrCreateAccount(ctx, "user-2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("requires user_id", func(t *testing.T) {
		_, err := service.GetOrCreateAccount(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("GetAccount returns ErrNotFound for missing account", func(t *testing.T) {
		_, err := service.GetAccount(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreditService_RunGating(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCreditService(client.Client)
	ctx := context.Background()

	acct, err := service.GetOrCreateAccount(ctx, "user-gate")
	require.NoError(t, err)

	t.Run("zero balance blocks reservation with a reason", func(t *testing.T) {
		ok, reason, err := service.CheckAndReserveCredits(ctx, acct.ID)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "account balance exhausted", reason)
	})

	t.Run("zero balance yields ErrInsufficientCredits", func(t *testing.T) {
		err := service.CheckModelAccess(ctx, acct.ID, "claude-sonnet-4-20250514")
		assert.ErrorIs(t, err, ErrInsufficientCredits)
	})

	t.Run("model name is required", func(t *testing.T) {
		err := service.CheckModelAccess(ctx, acct.ID, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("positive balance reserves", func(t *testing.T) {
		require.NoError(t, service.GrantCredits(ctx, acct.ID, 5, "signup grant"))

		ok, token, err := service.CheckAndReserveCredits(ctx, acct.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotEmpty(t, token)

		assert.NoError(t, service.CheckModelAccess(ctx, acct.ID, "claude-sonnet-4-20250514"))
	})
}

func TestCreditService_GrantCredits(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCreditService(client.Client)
	ctx := context.Background()

	acct, err := service.GetOrCreateAccount(ctx, "user-grant")
	require.NoError(t, err)

	t.Run("adds funds with a ledger trail", func(t *testing.T) {
		require.NoError(t, service.GrantCredits(ctx, acct.ID, 25.504, "monthly refill"))

		got, err := service.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.InDelta(t, 25.5, got.Balance, 1e-9)
		assert.NotNil(t, got.LastGrantDate)

		entries, err := service.ListLedger(ctx, acct.ID, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, creditledger.TypeGrant, entries[0].Type)
		assert.InDelta(t, 25.5, entries[0].Amount, 1e-9)
		assert.InDelta(t, 25.5, entries[0].BalanceAfter, 1e-9)
		assert.Equal(t, "monthly refill", entries[0].Description)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		err := service.GrantCredits(ctx, acct.ID, 0, "nothing")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing account", func(t *testing.T) {
		err := service.GrantCredits(ctx, "missing", 10, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreditService_DeductUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCreditService(client.Client)
	ctx := context.Background()

	acct, err := service.GetOrCreateAccount(ctx, "user-deduct")
	require.NoError(t, err)
	require.NoError(t, service.GrantCredits(ctx, acct.ID, 10, "test funds"))

	t.Run("charges the completion cost against the balance", func(t *testing.T) {
		// claude-sonnet-4: $3/M prompt + $15/M completion.
		cost, err := service.DeductUsage(ctx, DeductUsageRequest{
			AccountID:        acct.ID,
			ThreadID:         "thread-bill",
			LLMResponseID:    "resp-1",
			Model:            "claude-sonnet-4-20250514",
			PromptTokens:     1_000_000,
			CompletionTokens: 100_000,
		})
		require.NoError(t, err)
		assert.InDelta(t, 4.5, cost, 1e-9)

		got, err := service.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.InDelta(t, 5.5, got.Balance, 1e-9)

		entries, err := service.ListLedger(ctx, acct.ID, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		deduction := entries[0]
		assert.Equal(t, creditledger.TypeDeduction, deduction.Type)
		assert.InDelta(t, -4.5, deduction.Amount, 1e-9)
		assert.InDelta(t, 5.5, deduction.BalanceAfter, 1e-9)
		require.NotNil(t, deduction.LlmResponseID)
		assert.Equal(t, "resp-1", *deduction.LlmResponseID)
		require.NotNil(t, deduction.ThreadID)
		assert.Equal(t, "thread-bill", *deduction.ThreadID)
	})

	t.Run("replayed response id deducts nothing", func(t *testing.T) {
		cost, err := service.DeductUsage(ctx, DeductUsageRequest{
			AccountID:        acct.ID,
			LLMResponseID:    "resp-1",
			Model:            "claude-sonnet-4-20250514",
			PromptTokens:     1_000_000,
			CompletionTokens: 100_000,
		})
		require.NoError(t, err)
		assert.Zero(t, cost)

		got, err := service.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.InDelta(t, 5.5, got.Balance, 1e-9, "balance unchanged on replay")

		entries, err := service.ListLedger(ctx, acct.ID, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 2, "no second deduction row")
	})

	t.Run("cached prompt reads bill at the cache rate", func(t *testing.T) {
		cost, err := service.DeductUsage(ctx, DeductUsageRequest{
			AccountID:       acct.ID,
			LLMResponseID:   "resp-2",
			Model:           "claude-sonnet-4-20250514",
			PromptTokens:    1_000_000,
			CacheReadTokens: 1_000_000,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.3, cost, 1e-9)
	})

	t.Run("balance may dip below zero", func(t *testing.T) {
		// Billing is post-paid: the gate is checked before each
		// iteration, the deduction lands after.
		_, err := service.DeductUsage(ctx, DeductUsageRequest{
			AccountID:     acct.ID,
			LLMResponseID: "resp-3",
			Model:         "claude-sonnet-4-20250514",
			PromptTokens:  10_000_000,
		})
		require.NoError(t, err)

		got, err := service.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.Less(t, got.Balance, 0.0)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.DeductUsage(ctx, DeductUsageRequest{LLMResponseID: "r"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "account_id")

		_, err = service.DeductUsage(ctx, DeductUsageRequest{AccountID: acct.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm_response_id")
	})

	t.Run("returns ErrNotFound for missing account", func(t *testing.T) {
		_, err := service.DeductUsage(ctx, DeductUsageRequest{
			AccountID:     "missing",
			LLMResponseID: "resp-4",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
