// Package reconcile diffs an externally fetched entity set against the
// locally persisted rows and applies the resulting mutations atomically.
//
// Entities are correlated by their stable external key. Diff computes the
// insert/update/delete plan that converges the local set onto the external
// one; Apply executes a whole plan inside a single transaction, so a failed
// pass never leaves partial state behind.
//
// Two delete policies exist. Full-mirror reconciliation (servers) deletes
// every local row whose key no longer appears externally. Update-only
// reconciliation (players, workshop items) never deletes, because historical
// records reference those rows.
//
// Deletes always key off the external-key column, never off row id ranges,
// so a pass stays correct while unrelated inserts interleave through other
// entry points.
package reconcile
