// Package rank computes competitive standings from raw record rows.
//
// Ranking is a pure function of (map, mode, time) and is recomputed on every
// use, never persisted. Within a (map, mode) partition records are ordered by
// ascending time; records sharing a time share a rank, and the next distinct
// time takes the rank equal to the number of faster-or-tied records plus one,
// matching the semantics of a SQL RANK() window function. A rank of 1 marks
// the world record of its partition.
//
// Consumers must apply pagination and secondary sort orders after computing
// ranks: re-sorting standings by any column never changes the rank values.
package rank
