package rank

import (
	"sort"

	"qldf/core/models"
)

// Standing is one record with its competitive rank inside the (map, mode)
// partition it belongs to.
type Standing struct {
	models.Record
	Rank int
}

// IsWorldRecord reports whether the standing leads its partition.
func (s Standing) IsWorldRecord() bool {
	return s.Rank == 1
}

// partition is the grouping key ranking is computed over.
type partition struct {
	MapID uint
	Mode  models.Mode
}

// Compute ranks every record against its (map, mode) partition. The result
// is ordered by partition and ascending time, with ties broken by date then
// row id so the output is deterministic; callers re-sort as they see fit.
func Compute(records []models.Record) []Standing {
	groups := make(map[partition][]models.Record)
	for _, r := range records {
		key := partition{MapID: r.MapID, Mode: r.Mode}
		groups[key] = append(groups[key], r)
	}

	keys := make([]partition, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].MapID != keys[j].MapID {
			return keys[i].MapID < keys[j].MapID
		}
		return keys[i].Mode < keys[j].Mode
	})

	standings := make([]Standing, 0, len(records))
	for _, key := range keys {
		standings = append(standings, rankPartition(groups[key])...)
	}
	return standings
}

// rankPartition assigns competitive ranks within one partition.
func rankPartition(records []models.Record) []Standing {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Time != records[j].Time {
			return records[i].Time < records[j].Time
		}
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})

	standings := make([]Standing, 0, len(records))
	currentRank := 0
	previousTime := -1
	for i, r := range records {
		if r.Time != previousTime {
			currentRank = i + 1
			previousTime = r.Time
		}
		standings = append(standings, Standing{Record: r, Rank: currentRank})
	}
	return standings
}

// ForPlayer filters standings down to one player's rows. The input must have
// been computed over the full partitions, so the surviving ranks reflect all
// attempts on each map and mode, not just the player's own.
func ForPlayer(standings []Standing, playerID uint) []Standing {
	var out []Standing
	for _, s := range standings {
		if s.PlayerID == playerID {
			out = append(out, s)
		}
	}
	return out
}

// WorldRecords filters standings down to partition leaders.
func WorldRecords(standings []Standing) []Standing {
	var out []Standing
	for _, s := range standings {
		if s.IsWorldRecord() {
			out = append(out, s)
		}
	}
	return out
}
