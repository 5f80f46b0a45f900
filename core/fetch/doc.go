// Package fetch performs the outbound HTTP requests of the sync jobs.
//
// Every request carries the fixed worker User-Agent and an Accept header for
// structured data. Query parameters are concatenated as literal key=value
// pairs in the order given, matching what the upstream APIs expect; values
// must already be transport-safe.
//
// The client never retries. A transport failure, a timeout or a non-2xx
// status is reported as *NetworkError and it is up to the caller (the sync
// orchestrator) to abort the job run and let the next scheduled run retry.
package fetch
