// Package models defines the core domain models for Tripwiser.
//
// # Records
//
// The following models are persisted by the storage layer:
//   - Trip: a golf trip owned by one user, with its member roster
//   - Member: a participant on a trip, optionally linked to a user account
//   - Expense: a shared cost paid by one member and split among others
//   - Round: one round of golf with its randomized play groups
//   - SkinsGame: an 18-hole skins game between trip members
//   - Scorecard: per-hole stroke counts for a round, used by the leaderboard
//
// # Derived values
//
// Settlement, HoleResult and the leaderboard entries are computed on every read
// by the calculator package and never stored.
//
// # Design Principles
//
//  1. Identifiers are distinct string types, so a MemberID cannot be passed where
//     a TripID is expected.
//  2. Money is decimal.Decimal; amounts are presented with two decimal places.
//  3. Relationships are expressed with IDs, never pointers.
package models
