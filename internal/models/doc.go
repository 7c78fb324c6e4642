// Package models defines the core domain models for the 500 scorekeeper.
//
// # Models
//
//   - Team: one of the two sides at the table, with its players and running score
//   - Bid: the contract called in a round and how many tricks the bidders took
//   - Round: an immutable record of one completed bid and its score deltas
//   - Scorer: a registered account that owns saved games
//
// Only the bid and its final outcome are modelled. Individual cards and
// trick-by-trick play are never recorded.
//
// # Design Principles
//
// 1. **Two teams, always**: team ids are 0 and 1, and "the other team" is
// derived by exclusion.
// 2. **Scores are derived**: Team.Score is a cache of the ledger replay and is
// never edited directly.
// 3. **References by id**: a Bid names its team by id instead of embedding it,
// so editing a team never rewrites history.
package models
