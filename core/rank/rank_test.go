package rank_test

import (
	"testing"
	"time"

	"qldf/core/models"
	"qldf/core/rank"

	"github.com/stretchr/testify/assert"
)

func record(id uint, mapID uint, mode models.Mode, playerID uint, ms int) models.Record {
	return models.Record{
		Model:    models.Model{ID: id},
		Mode:     mode,
		MapID:    mapID,
		PlayerID: playerID,
		Time:     ms,
		Date:     time.Date(2019, 11, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeTiesShareRankAndGapFollows(t *testing.T) {
	records := []models.Record{
		record(1, 1, models.ModeVQ3, 10, 1000),
		record(2, 1, models.ModeVQ3, 11, 1000),
		record(3, 1, models.ModeVQ3, 12, 1200),
	}

	standings := rank.Compute(records)
	assert.Len(t, standings, 3)

	ranks := []int{standings[0].Rank, standings[1].Rank, standings[2].Rank}
	assert.Equal(t, []int{1, 1, 3}, ranks)
}

func TestComputePartitionsByMapAndMode(t *testing.T) {
	records := []models.Record{
		// Same map, two modes: each mode ranks on its own.
		record(1, 1, models.ModeVQ3, 10, 2000),
		record(2, 1, models.ModeCPM, 10, 9000),
		// Another map entirely.
		record(3, 2, models.ModeVQ3, 11, 5000),
	}

	standings := rank.Compute(records)
	assert.Len(t, standings, 3)
	for _, s := range standings {
		assert.Equal(t, 1, s.Rank, "sole record of its partition must lead it")
	}
}

func TestComputeTieBreakByDateThenID(t *testing.T) {
	early := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)

	a := record(5, 1, models.ModeVQ3, 10, 1000)
	a.Date = late
	b := record(6, 1, models.ModeVQ3, 11, 1000)
	b.Date = early

	standings := rank.Compute([]models.Record{a, b})
	assert.Equal(t, uint(11), standings[0].PlayerID, "earlier date lists first")
	assert.Equal(t, uint(10), standings[1].PlayerID)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 1, standings[1].Rank, "tied times share the rank either way")
}

func TestForPlayerKeepsFullPartitionRanks(t *testing.T) {
	records := []models.Record{
		record(1, 1, models.ModeVQ3, 10, 1000),
		record(2, 1, models.ModeVQ3, 11, 1100),
		record(3, 1, models.ModeVQ3, 12, 1200),
	}

	mine := rank.ForPlayer(rank.Compute(records), 12)
	assert.Len(t, mine, 1)
	assert.Equal(t, 3, mine[0].Rank, "rank reflects all attempts, not just the player's rows")
}

func TestWorldRecords(t *testing.T) {
	records := []models.Record{
		record(1, 1, models.ModeVQ3, 10, 1000),
		record(2, 1, models.ModeVQ3, 11, 1100),
		record(3, 2, models.ModeVQ3, 11, 3000),
	}

	leaders := rank.WorldRecords(rank.Compute(records))
	assert.Len(t, leaders, 2)
	for _, s := range leaders {
		assert.True(t, s.IsWorldRecord())
		assert.Equal(t, 1, s.Rank)
	}
}

func TestComputeEmpty(t *testing.T) {
	assert.Empty(t, rank.Compute(nil))
}
