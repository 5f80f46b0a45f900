package listing_test

import (
	"context"
	"testing"
	"time"

	"qldf/core/database"
	"qldf/core/models"
	"qldf/feature/listing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))
	return db
}

// seed creates one map, three players and their attempts on it: two tied
// times and one slower, so ranks come out 1, 1, 3.
func seed(t *testing.T, db *gorm.DB) (mapID uint, playerIDs []uint) {
	m := models.Map{Name: "castle"}
	assert.NoError(t, db.Create(&m).Error)

	names := []string{"alpha", "Bravo", "charlie"}
	times := []int{1000, 1000, 1200}
	dates := []time.Time{
		time.Date(2019, 11, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2019, 11, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2019, 11, 22, 0, 0, 0, 0, time.UTC),
	}

	for i, name := range names {
		p := models.Player{Name: name, SteamID: "7656119800000000" + string(rune('1'+i))}
		assert.NoError(t, db.Create(&p).Error)
		playerIDs = append(playerIDs, p.ID)

		r := models.Record{
			Mode:     models.ModeVQ3,
			MapID:    m.ID,
			PlayerID: p.ID,
			Time:     times[i],
			Date:     dates[i],
		}
		assert.NoError(t, db.Create(&r).Error)
	}
	return m.ID, playerIDs
}

func TestMapRecordsRanksAndDecorates(t *testing.T) {
	db := newTestDB(t)
	mapID, _ := seed(t, db)
	service := listing.NewService(db, listing.Config{RowsPerPage: 20}, zap.NewNop())

	result, err := service.MapRecords(context.Background(), mapID, models.ModeVQ3, listing.SortRank, listing.Page{})
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Rows, 3)

	ranks := []int{result.Rows[0].Rank, result.Rows[1].Rank, result.Rows[2].Rank}
	assert.Equal(t, []int{1, 1, 3}, ranks)
	assert.Equal(t, "castle", result.Rows[0].MapName)
	assert.Equal(t, "alpha", result.Rows[0].PlayerName)
}

func TestMapRecordsSortByNameDoesNotChangeRanks(t *testing.T) {
	db := newTestDB(t)
	mapID, _ := seed(t, db)
	service := listing.NewService(db, listing.Config{RowsPerPage: 20}, zap.NewNop())

	result, err := service.MapRecords(context.Background(), mapID, models.ModeVQ3, listing.SortName, listing.Page{})
	assert.NoError(t, err)

	// Case-insensitive name order with ranks carried along untouched.
	assert.Equal(t, "alpha", result.Rows[0].PlayerName)
	assert.Equal(t, "Bravo", result.Rows[1].PlayerName)
	assert.Equal(t, "charlie", result.Rows[2].PlayerName)
	assert.Equal(t, 1, result.Rows[0].Rank)
	assert.Equal(t, 1, result.Rows[1].Rank)
	assert.Equal(t, 3, result.Rows[2].Rank)
}

func TestMapRecordsPaginationAfterRanking(t *testing.T) {
	db := newTestDB(t)
	mapID, _ := seed(t, db)
	service := listing.NewService(db, listing.Config{RowsPerPage: 20}, zap.NewNop())

	result, err := service.MapRecords(context.Background(), mapID, models.ModeVQ3, listing.SortRank, listing.Page{Number: 2, Size: 2})
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Rows, 1)
	assert.Equal(t, 3, result.Rows[0].Rank, "the second page still shows the full-set rank")
}

func TestPlayerRecordsRankAgainstFullPartition(t *testing.T) {
	db := newTestDB(t)
	_, playerIDs := seed(t, db)
	service := listing.NewService(db, listing.Config{RowsPerPage: 20}, zap.NewNop())

	result, err := service.PlayerRecords(context.Background(), playerIDs[2], listing.SortRank, listing.Page{})
	assert.NoError(t, err)
	assert.Len(t, result.Rows, 1)
	assert.Equal(t, 3, result.Rows[0].Rank, "rank counts the other players' attempts too")
	assert.Equal(t, "charlie", result.Rows[0].PlayerName)
}

func TestRecentRecordsNewestFirstAndCapped(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	service := listing.NewService(db, listing.Config{RowsPerPage: 20, NumRecentRecords: 2}, zap.NewNop())

	rows, err := service.RecentRecords(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.True(t, rows[0].Date.After(rows[1].Date))
}

func TestRecentWorldRecordsOnlyPartitionLeaders(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	service := listing.NewService(db, listing.Config{RowsPerPage: 20, NumRecentWorldRecords: 10}, zap.NewNop())

	rows, err := service.RecentWorldRecords(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2, "both tied leaders hold the record")
	for _, row := range rows {
		assert.Equal(t, 1, row.Rank)
	}
}
