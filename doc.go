// Package spendwise provides the core of a local-first personal finance
// tracker. It records transactions against user-defined accounts and
// categories and derives the aggregate views a user cares about: balances,
// net worth, budget progress, monthly trends and upcoming obligations.
//
// The core functionalities include:
//   - Entity Store: normalized collections of accounts, categories,
//     transactions with multi-category splits, budgets, recurring templates,
//     goals, investments and debts, held in memory as the single source of
//     truth.
//   - Mutation Operations: guarded create/update/delete functions per entity
//     type, the only path through which the store changes. They enforce
//     referential integrity (cascading account deletes, category in-use
//     checks) and uniqueness (case-insensitive names, one budget per
//     category and month).
//   - Derivation Engine: pure, side-effect-free computations over the store,
//     recomputed on every read so views are never stale.
//   - Recurring Poster: materializes a recurring template into a concrete
//     transaction, refusing duplicate postings within the same month.
//   - Snapshot Import/Export: the whole store serialized as one JSON
//     document, shape-validated on import.
//
// Persistence is delegated to the kv subpackage, a named-key JSON store.
// This package serves as the foundational logic for the `sw` command-line
// tool.
package spendwise
