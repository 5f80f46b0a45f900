package reconcile

import "go.uber.org/zap"

// Entity is any persisted type correlated with an external source through a
// stable external identifier.
type Entity interface {
	ExternalKey() string
}

// Plan is the set of mutations that converges the local entity set onto the
// external one. Inserts and Updates preserve fetch order; Deletes holds
// external keys only.
type Plan[E Entity] struct {
	Inserts []E
	Updates []E
	Deletes []string

	// Unchanged counts external entities dropped as no-op updates.
	Unchanged int
}

// Empty reports whether the plan carries no mutations.
func (p Plan[E]) Empty() bool {
	return len(p.Inserts) == 0 && len(p.Updates) == 0 && len(p.Deletes) == 0
}

// Options controls a reconciliation pass.
type Options[E Entity] struct {
	// DeleteMissing enables full-mirror semantics: local rows whose key is
	// absent from the external set are deleted. Leave false for update-only
	// entity types.
	DeleteMissing bool

	// Merge combines an external entity with its existing local row before
	// the update is emitted, carrying over the row identity and any fields
	// the extractor intentionally preserved. Required for updates to target
	// the existing row.
	Merge func(external, local E) E

	// Unchanged, when set, drops updates where the merged entity equals the
	// local row, keeping repeated passes against an unchanged feed free of
	// writes.
	Unchanged func(merged, local E) bool

	// Logger receives diagnostics (duplicate feed keys). Optional.
	Logger *zap.Logger
}

// Diff computes the mutation plan for one reconciliation pass.
//
// External entities are processed in fetch order. A key appearing twice in
// the same fetch is a feed anomaly, not an error: the last occurrence wins,
// deterministically, at the position of the first.
func Diff[E Entity](external []E, local []E, opts Options[E]) Plan[E] {
	localByKey := make(map[string]E, len(local))
	for _, row := range local {
		localByKey[row.ExternalKey()] = row
	}

	// Collapse duplicates: last entry per key wins, order of first sight kept.
	order := make([]string, 0, len(external))
	latest := make(map[string]E, len(external))
	for _, ext := range external {
		key := ext.ExternalKey()
		if _, dup := latest[key]; dup {
			if opts.Logger != nil {
				opts.Logger.Debug("duplicate external key in fetch, last entry wins",
					zap.String("key", key))
			}
		} else {
			order = append(order, key)
		}
		latest[key] = ext
	}

	var plan Plan[E]
	for _, key := range order {
		ext := latest[key]
		localRow, exists := localByKey[key]
		if !exists {
			plan.Inserts = append(plan.Inserts, ext)
			continue
		}
		merged := ext
		if opts.Merge != nil {
			merged = opts.Merge(ext, localRow)
		}
		if opts.Unchanged != nil && opts.Unchanged(merged, localRow) {
			plan.Unchanged++
			continue
		}
		plan.Updates = append(plan.Updates, merged)
	}

	if opts.DeleteMissing {
		for _, row := range local {
			if _, present := latest[row.ExternalKey()]; !present {
				plan.Deletes = append(plan.Deletes, row.ExternalKey())
			}
		}
	}

	return plan
}
