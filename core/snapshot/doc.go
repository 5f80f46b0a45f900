// Package snapshot archives the raw payloads fetched by the sync and
// populate jobs to object storage, one object per payload under
// snapshots/<job>/<run-id>/<name>.
//
// The archive exists for debugging and replay: the populate command can
// rebuild the database from archived payloads instead of refetching
// everything. Archiving is best-effort and optional; a disabled or failing
// archive never fails a job.
package snapshot
