// Package ledger writes append-only credit and XP transactions with balance snapshots.
package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/tournament-rewards/internal/domain"
)

// Writer persists ledger rows and running balances inside the caller's transaction
type Writer interface {
	InsertLedgerTransaction(ctx context.Context, t *domain.LedgerTransaction) error
	UpdateBalance(ctx context.Context, b *domain.Balance) error
}

// Entry is a movement to record. The balance snapshot is computed by the Book.
type Entry struct {
	TournamentID  *int64
	ParticipantID string
	RunID         *uuid.UUID
	Kind          domain.TransactionKind
	Currency      domain.Currency
	Scope         string
	Amount        int64
	Description   string
}

// Key returns the balance the entry moves
func (e Entry) Key() domain.BalanceKey {
	return domain.BalanceKey{ParticipantID: e.ParticipantID, Currency: e.Currency, Scope: e.Scope}
}

// Book tracks balances locked for one batch and records transactions against them.
// A Book is not safe for concurrent use.
type Book struct {
	w        Writer
	balances map[domain.BalanceKey]*domain.Balance
	dirty    map[domain.BalanceKey]bool
	recorded []domain.LedgerTransaction
}

// NewBook starts a book over balances already locked FOR UPDATE
func NewBook(w Writer, locked []domain.Balance) *Book {
	b := &Book{
		w:        w,
		balances: make(map[domain.BalanceKey]*domain.Balance, len(locked)),
		dirty:    make(map[domain.BalanceKey]bool),
	}
	for i := range locked {
		bal := locked[i]
		b.balances[bal.BalanceKey] = &bal
	}
	return b
}

// Validate checks an entry without touching storage
func Validate(e Entry) error {
	switch {
	case e.ParticipantID == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidLedgerEntry, ErrMsgParticipantMissing)
	case e.Scope == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidLedgerEntry, ErrMsgScopeMissing)
	}

	switch e.Kind {
	case domain.KindTournamentReward:
		if e.Amount < 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidLedgerEntry, ErrMsgNegativeReward)
		}
	case domain.KindAdjustment, domain.KindRefund:
	default:
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidLedgerEntry, ErrMsgUnknownKind, e.Kind)
	}

	switch e.Currency {
	case domain.CurrencyCredits, domain.CurrencyXP:
	default:
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidLedgerEntry, ErrMsgUnknownCurrency, e.Currency)
	}
	return nil
}

// Record appends one transaction and returns its id. The stored balance_after is the
// locked balance plus every amount recorded against it so far in this book.
func (b *Book) Record(ctx context.Context, e Entry) (uuid.UUID, error) {
	if err := Validate(e); err != nil {
		return uuid.Nil, err
	}

	key := e.Key()
	bal, ok := b.balances[key]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s (%s/%s/%s)", domain.ErrInvalidLedgerEntry, ErrMsgBalanceNotLocked,
			key.ParticipantID, key.Currency, key.Scope)
	}

	txn := domain.LedgerTransaction{
		ID:            uuid.New(),
		TournamentID:  e.TournamentID,
		ParticipantID: e.ParticipantID,
		RunID:         e.RunID,
		Kind:          e.Kind,
		Currency:      e.Currency,
		Scope:         e.Scope,
		Amount:        e.Amount,
		BalanceAfter:  bal.Amount + e.Amount,
		Description:   e.Description,
	}
	if err := b.w.InsertLedgerTransaction(ctx, &txn); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", ErrMsgFailedToRecord, err)
	}

	bal.Amount = txn.BalanceAfter
	b.dirty[key] = true
	b.recorded = append(b.recorded, txn)
	return txn.ID, nil
}

// Balance returns the current in-book balance for key
func (b *Book) Balance(key domain.BalanceKey) (int64, bool) {
	bal, ok := b.balances[key]
	if !ok {
		return 0, false
	}
	return bal.Amount, true
}

// Dirty returns the balances changed by this book, in key order
func (b *Book) Dirty() []domain.Balance {
	out := make([]domain.Balance, 0, len(b.dirty))
	for key := range b.dirty {
		out = append(out, *b.balances[key])
	}
	sort.Slice(out, func(i, j int) bool {
		return lessKey(out[i].BalanceKey, out[j].BalanceKey)
	})
	return out
}

// Flush writes every changed balance back through the Writer
func (b *Book) Flush(ctx context.Context) error {
	for _, bal := range b.Dirty() {
		bal := bal
		if err := b.w.UpdateBalance(ctx, &bal); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToFlush, err)
		}
	}
	return nil
}

// Recorded returns the transactions written so far, in order
func (b *Book) Recorded() []domain.LedgerTransaction {
	return append([]domain.LedgerTransaction(nil), b.recorded...)
}

// SumByKind totals recorded amounts of one kind and currency
func (b *Book) SumByKind(kind domain.TransactionKind, currency domain.Currency) int64 {
	var total int64
	for _, t := range b.recorded {
		if t.Kind == kind && t.Currency == currency {
			total += t.Amount
		}
	}
	return total
}

func lessKey(a, b domain.BalanceKey) bool {
	if a.ParticipantID != b.ParticipantID {
		return a.ParticipantID < b.ParticipantID
	}
	if a.Currency != b.Currency {
		return a.Currency < b.Currency
	}
	return a.Scope < b.Scope
}
