// Package sync owns the three periodic jobs that keep the local store in
// step with the external services: the live server list, the player
// profiles, and the workshop item metadata.
//
// Every job invocation is wrapped uniformly: a run id is issued, start and
// completion markers are logged, and both errors and panics are logged with
// their traces without propagating; one job's failure never takes down the
// scheduler or the other jobs. A failed run leaves no partial state behind:
// each reconciliation pass commits as a single transaction, and the next
// scheduled run retries from scratch.
//
// Jobs are not reentrant (they carry per-run caches such as the vanity-URL
// cache); the scheduler skips a tick when the previous invocation of the
// same job still runs.
package sync
