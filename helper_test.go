package splitex

import "github.com/shopspring/decimal"

// PLN is a helper for tests to create base-currency money from const
func PLN(v float64) Money { return M(v, "PLN") }

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// dec is a helper for tests to build an exact decimal from its string form
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newTestLedger builds an in-memory ledger (no persister) with the default
// currency table and the given participants.
func newTestLedger(names ...string) (*Ledger, []Participant) {
	l, err := NewLedger()
	if err != nil {
		panic(err)
	}
	if len(names) == 0 {
		return l, l.Participants()
	}
	// Replace the seeded defaults with the requested participants.
	if err := l.Reset(); err != nil {
		panic(err)
	}
	for _, p := range l.Participants() {
		if err := l.RemoveParticipant(p.ID); err != nil {
			panic(err)
		}
	}
	var participants []Participant
	for _, name := range names {
		p, err := l.AddParticipant(name)
		if err != nil {
			panic(err)
		}
		participants = append(participants, p)
	}
	return l, participants
}
