// Package listing builds the ranked record listings the web layer renders:
// per-map standings, per-player standings, and the recent-records feeds.
//
// Rank is computed first, over the full (map, mode) partitions, and only
// then are sort order and pagination applied. Re-sorting a listing by time,
// date or player name never changes the rank shown on a row, and a player's
// rank always reflects every attempt on that map and mode, not just the
// player's own rows.
package listing
