package ledger

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Sink is a named display surface refreshed after every balance mutation.
type Sink func(balance decimal.Decimal)

// Ledger owns the locally cached balance. Mutations are optimistic: they
// apply before the account service confirms and are corrected whenever a
// fresh server snapshot arrives through Reconcile.
type Ledger struct {
	mu      sync.Mutex
	balance decimal.Decimal
	sinks   map[string]Sink
}

func New() *Ledger {
	return &Ledger{
		balance: decimal.Zero,
		sinks:   make(map[string]Sink),
	}
}

// RegisterSink attaches a display surface under a stable name. Registering
// the same name again replaces the previous surface.
func (l *Ledger) RegisterSink(name string, s Sink) {
	l.mu.Lock()
	l.sinks[name] = s
	l.mu.Unlock()
}

func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Debit subtracts amount, or fails with ErrInsufficientFunds leaving the
// balance untouched. Callers must check the error before committing a bet.
func (l *Ledger) Debit(amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount.GreaterThan(l.balance) {
		return ErrInsufficientFunds
	}
	l.balance = l.balance.Sub(amount)
	l.notifyLocked()
	return nil
}

// Credit adds amount (zero included) and always succeeds.
func (l *Ledger) Credit(amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = l.balance.Add(amount)
	l.notifyLocked()
}

// Reconcile unconditionally overwrites the local balance with the
// authoritative server value.
func (l *Ledger) Reconcile(serverBalance decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = serverBalance
	l.notifyLocked()
}

// notifyLocked runs under l.mu so a mutation and its display refresh are
// never observed apart.
func (l *Ledger) notifyLocked() {
	for _, s := range l.sinks {
		s(l.balance)
	}
}
