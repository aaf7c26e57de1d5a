// Package splitex provides the ledger and settlement engine for splitting
// shared group expenses across participants. It is designed to be
// local-first and single-instance: one in-memory ledger, explicitly
// constructed and passed to every consumer.
//
// The core functionalities include:
//   - Ledger Management: Recording participants, shared expenses and
//     settlement payments, with partial updates and a reset that preserves
//     participants and currencies.
//   - Multi-Currency Support: A currency table with manually set exchange
//     rates to a fixed base currency (PLN), used to normalize every
//     computation.
//   - Balance Calculation: Deriving each participant's paid/owed/net
//     position from the expenses with an equal-split policy, memoized until
//     the next mutation.
//   - Settlement Planning: Computing a small set of transfers that zeroes
//     all net balances, using greedy largest-first matching.
//   - Change Notification: A synchronous publish/subscribe registry fired
//     after every mutation.
//   - Data Persistence: Saving and restoring the full state as a single
//     human-readable JSON snapshot, plus a user-facing import/export surface
//     with per-record validation and coercion.
//
// This package serves as the foundational logic for the `spx` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package splitex
