package splitex

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("participant name must not be empty")
	ErrDuplicateName      = errors.New("participant name already in use")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrParticipantInUse   = errors.New("participant is referenced by expenses")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrNoBeneficiaries    = errors.New("expense needs at least one beneficiary")
	ErrSamePayerRecipient = errors.New("payer and recipient must differ")
)

// Ledger is the authoritative in-memory store of participants, expenses,
// payments and the currency table. It orchestrates cache invalidation,
// snapshot persistence and change notification on every mutation.
//
// A single mutex covers each public operation: mutation, cache invalidation
// and persistence run as one critical section. Subscribers are notified
// after the critical section so callbacks can re-read the ledger.
type Ledger struct {
	mu           sync.Mutex
	participants []Participant
	expenses     []Expense
	payments     []Payment
	currencies   *Currencies

	persister Persister
	bus       bus

	strict      bool // strict participant profile
	netPayments bool // fold payments into net balances before planning

	cachedBalances  []Balance
	cachedTransfers []Transfer
	balancesValid   bool
	transfersValid  bool
}

// Option configures a Ledger at construction time.
type Option func(*Ledger)

// WithPersister sets the snapshot persistence collaborator. The ledger loads
// from it once at construction and saves after every mutation.
func WithPersister(p Persister) Option {
	return func(l *Ledger) { l.persister = p }
}

// WithCurrencies replaces the default currency table.
func WithCurrencies(c *Currencies) Option {
	return func(l *Ledger) { l.currencies = c }
}

// WithStrictParticipants enables the stricter participant profile: empty and
// duplicate names are rejected, and a participant referenced by expenses
// cannot be removed.
func WithStrictParticipants() Option {
	return func(l *Ledger) { l.strict = true }
}

// WithPaymentNetting makes registered payments reduce the net balances that
// feed the settlement plan. By default payments are an informational record
// kept apart from expense-derived balances.
func WithPaymentNetting() Option {
	return func(l *Ledger) { l.netPayments = true }
}

// NewLedger creates a ledger, loading state from the persister when one is
// configured. When the persister holds nothing, the ledger is seeded with
// the default participants and currency table and saved once.
func NewLedger(opts ...Option) (*Ledger, error) {
	l := &Ledger{}
	for _, opt := range opts {
		opt(l)
	}

	if l.persister != nil {
		snap, err := l.persister.Load()
		if err != nil {
			return nil, fmt.Errorf("could not load stored state: %w", err)
		}
		if snap != nil {
			l.restore(snap)
		}
	}
	if l.currencies == nil {
		l.currencies = NewCurrencies(DefaultCurrencies()...)
	}
	if len(l.participants) == 0 {
		l.participants = DefaultParticipants()
		if err := l.save(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// restore replaces all collections from a snapshot. Caller must hold the lock
// (or be the constructor).
func (l *Ledger) restore(snap *Snapshot) {
	l.participants = slices.Clone(snap.Participants)
	l.expenses = slices.Clone(snap.Expenses)
	l.payments = slices.Clone(snap.Payments)
	if len(snap.Currencies) > 0 {
		l.currencies = NewCurrencies(snap.Currencies...)
	}
	l.invalidate()
}

// snapshot captures the four collections. Caller must hold the lock.
func (l *Ledger) snapshot() *Snapshot {
	var currencies []Currency
	if l.currencies != nil {
		currencies = l.currencies.All()
	}
	return &Snapshot{
		Participants: slices.Clone(l.participants),
		Expenses:     slices.Clone(l.expenses),
		Currencies:   currencies,
		Payments:     slices.Clone(l.payments),
	}
}

// save persists the current state through the persister, if any.
func (l *Ledger) save() error {
	if l.persister == nil {
		return nil
	}
	if err := l.persister.Save(l.snapshot()); err != nil {
		return fmt.Errorf("could not save state: %w", err)
	}
	return nil
}

// invalidate drops the memoized balance and transfer results.
func (l *Ledger) invalidate() {
	l.balancesValid = false
	l.transfersValid = false
	l.cachedBalances = nil
	l.cachedTransfers = nil
}

// Subscribe registers a callback invoked synchronously after every mutation,
// in subscription order. The returned closure deregisters it.
func (l *Ledger) Subscribe(fn func()) (unsubscribe func()) {
	return l.bus.subscribe(fn)
}

// --- participants ---

// AddParticipant creates a participant with a fresh unique id.
func (l *Ledger) AddParticipant(name string) (Participant, error) {
	l.mu.Lock()
	if l.strict {
		if err := l.checkName(name, ""); err != nil {
			l.mu.Unlock()
			return Participant{}, err
		}
	}
	p := Participant{ID: newID(), Name: name}
	l.participants = append(l.participants, p)
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return p, err
}

// RenameParticipant changes a participant's display name. The id is
// immutable.
func (l *Ledger) RenameParticipant(id, name string) error {
	l.mu.Lock()
	i := slices.IndexFunc(l.participants, func(p Participant) bool { return p.ID == id })
	if i < 0 {
		l.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownParticipant, id)
	}
	if l.strict {
		if err := l.checkName(name, id); err != nil {
			l.mu.Unlock()
			return err
		}
	}
	l.participants[i].Name = name
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return err
}

// checkName enforces the strict participant profile. Caller must hold the
// lock. self is the id being renamed, empty on add.
func (l *Ledger) checkName(name, self string) error {
	if name == "" {
		return ErrEmptyName
	}
	for _, p := range l.participants {
		if p.Name == name && p.ID != self {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	return nil
}

// RemoveParticipant removes a participant by id. Expenses referencing the
// removed id are left in place; the unresolved reference becomes a display
// artifact. Under the strict profile removal is blocked while expenses still
// reference the participant.
func (l *Ledger) RemoveParticipant(id string) error {
	l.mu.Lock()
	if l.strict {
		for _, e := range l.expenses {
			if e.Payer == id || slices.Contains(e.Beneficiaries, id) {
				l.mu.Unlock()
				return fmt.Errorf("%w: %q", ErrParticipantInUse, id)
			}
		}
	}
	l.participants = slices.DeleteFunc(l.participants, func(p Participant) bool { return p.ID == id })
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return err
}

// Participants returns a copy of the participant list.
func (l *Ledger) Participants() []Participant {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.participants)
}

// ParticipantName resolves an id to a display name. Unresolved ids are
// returned as-is so callers can render dangling references gracefully.
func (l *Ledger) ParticipantName(id string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.participants {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

// --- expenses ---

// AddExpense records a shared expense. The id and creation timestamp are
// assigned here. Participant references are not hard-enforced; referencing
// an unknown id is a caller error that the balance math skips over.
func (l *Ledger) AddExpense(amount decimal.Decimal, currency, payer string, beneficiaries []string, description string) (Expense, error) {
	if !amount.IsPositive() {
		return Expense{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if len(beneficiaries) == 0 {
		return Expense{}, ErrNoBeneficiaries
	}
	e := Expense{
		ID:            newID(),
		Amount:        amount,
		Currency:      currency,
		Payer:         payer,
		Beneficiaries: slices.Clone(beneficiaries),
		Description:   description,
		Date:          Now(),
	}
	l.mu.Lock()
	l.expenses = append(l.expenses, e)
	l.invalidate()
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return e, err
}

// UpdateExpense merges a partial update into the stored expense. Updating an
// unknown id is a no-op.
func (l *Ledger) UpdateExpense(id string, update ExpenseUpdate) error {
	if update.Amount != nil && !update.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, update.Amount)
	}
	l.mu.Lock()
	i := slices.IndexFunc(l.expenses, func(e Expense) bool { return e.ID == id })
	if i < 0 {
		l.mu.Unlock()
		return nil
	}
	l.expenses[i] = update.apply(l.expenses[i])
	l.invalidate()
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return err
}

// RemoveExpense removes an expense by id.
func (l *Ledger) RemoveExpense(id string) error {
	l.mu.Lock()
	l.expenses = slices.DeleteFunc(l.expenses, func(e Expense) bool { return e.ID == id })
	l.invalidate()
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return err
}

// Expenses returns a copy of the expense list in insertion order.
func (l *Ledger) Expenses() []Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.expenses)
}

// --- payments ---

// RegisterPayment records a settlement transfer that already happened
// outside the expense ledger. Both participants must exist and differ, the
// currency must be known, and the amount must be positive; otherwise the
// operation fails and the ledger is left unchanged.
func (l *Ledger) RegisterPayment(from, to string, amount decimal.Decimal, currency string) (Payment, error) {
	if !amount.IsPositive() {
		return Payment{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if from == to {
		return Payment{}, ErrSamePayerRecipient
	}
	l.mu.Lock()
	if !l.hasParticipant(from) {
		l.mu.Unlock()
		return Payment{}, fmt.Errorf("%w: payer %q", ErrUnknownParticipant, from)
	}
	if !l.hasParticipant(to) {
		l.mu.Unlock()
		return Payment{}, fmt.Errorf("%w: recipient %q", ErrUnknownParticipant, to)
	}
	if !l.currencies.Has(currency) {
		l.mu.Unlock()
		return Payment{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
	}
	p := Payment{
		ID:       newID(),
		From:     from,
		To:       to,
		Amount:   amount,
		Currency: currency,
		Date:     Now(),
	}
	l.payments = append(l.payments, p)
	l.invalidate()
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return p, err
}

func (l *Ledger) hasParticipant(id string) bool {
	return slices.ContainsFunc(l.participants, func(p Participant) bool { return p.ID == id })
}

// RemovePayment removes a payment by id.
func (l *Ledger) RemovePayment(id string) error {
	l.mu.Lock()
	l.payments = slices.DeleteFunc(l.payments, func(p Payment) bool { return p.ID == id })
	l.invalidate()
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return err
}

// Payments returns a copy of the payment list in insertion order.
func (l *Ledger) Payments() []Payment {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.payments)
}

// --- currencies ---

// Currencies returns a copy of the currency table.
func (l *Ledger) Currencies() []Currency {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currencies.All()
}

// Currency returns the currency for the given code.
func (l *Ledger) Currency(code string) (Currency, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currencies.Get(code)
}

// UpdateRate sets a new exchange rate. A rate change invalidates the result
// cache like any other mutation.
func (l *Ledger) UpdateRate(code string, rate decimal.Decimal) error {
	l.mu.Lock()
	if err := l.currencies.UpdateRate(code, rate); err != nil {
		l.mu.Unlock()
		return err
	}
	l.invalidate()
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return err
}

// ToBase converts an amount in the given currency to the base currency.
func (l *Ledger) ToBase(amount decimal.Decimal, code string) Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currencies.ToBase(amount, code)
}

// Convert converts an amount between two currencies, rounded to 2 decimals.
func (l *Ledger) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currencies.Convert(amount, from, to)
}

// --- derived results ---

// CalculateBalances derives the per-participant balances from the expenses,
// normalized to the base currency. The result is memoized until the next
// mutation; the returned slice is a copy either way.
func (l *Ledger) CalculateBalances() []Balance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.balances())
}

// balances returns the cached balance list, computing it if stale. Caller
// must hold the lock.
func (l *Ledger) balances() []Balance {
	if !l.balancesValid {
		l.cachedBalances = computeBalances(l.participants, l.expenses, l.currencies)
		l.balancesValid = true
	}
	return l.cachedBalances
}

// CalculateTransfers computes the settlement plan for the current balances.
// Cached like CalculateBalances.
func (l *Ledger) CalculateTransfers() []Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.transfersValid {
		balances := slices.Clone(l.balances())
		if l.netPayments {
			balances = netPayments(balances, l.payments, l.currencies)
		}
		l.cachedTransfers = planTransfers(balances)
		l.transfersValid = true
	}
	return slices.Clone(l.cachedTransfers)
}

// --- reset ---

// Reset clears expenses and payments. Participants and the currency table
// survive the reset.
func (l *Ledger) Reset() error {
	l.mu.Lock()
	l.expenses = nil
	l.payments = nil
	l.invalidate()
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return err
}
