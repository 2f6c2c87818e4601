// Package tradebook keeps a lot-linked stock-trade journal. It is designed
// to be local-first and auditable: every sale names the purchase lot it
// draws from, so realized profit is always traceable to a pair of records.
//
// The core functionalities include:
//   - Ledger Management: Recording buys, lot-matched sells and standalone
//     cash events, each under a unique numeric id, with edits and deletions
//     that keep the lot bookkeeping consistent.
//   - Manual Sale Matching: Sales are created only against an explicitly
//     chosen lot; there is no automatic first-in-first-out selection.
//   - Profit Series: Folding the journal into a cumulative realized profit
//     series with monthly totals, per-trade averages and the best sell of
//     the month.
//   - Data Persistence: Encoding and decoding the journal as a flat JSON
//     array snapshot whose invariants are re-checked on load.
//
// This package serves as the foundational logic for the `tbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tradebook
