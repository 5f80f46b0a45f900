package reconcile_test

import (
	"errors"
	"testing"

	"qldf/core/models"
	"qldf/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)
	return db, mock
}

func TestApplyEmptyPlanTouchesNothing(t *testing.T) {
	db, mock := newMockDB(t)

	err := reconcile.Apply(db, reconcile.Plan[models.Server]{}, "server_id")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no transaction for an empty plan")
}

func TestApplyFullPlanSingleTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	plan := reconcile.Plan[models.Server]{
		Inserts: []models.Server{{ServerID: "1", Name: "Race #1"}},
		Updates: []models.Server{{Model: models.Model{ID: 10}, ServerID: "2", Name: "Race #2"}},
		Deletes: []string{"3"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "servers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "servers"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "servers"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := reconcile.Apply(db, plan, "server_id")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)

	plan := reconcile.Plan[models.Server]{
		Inserts: []models.Server{{ServerID: "1", Name: "Race #1"}},
		Deletes: []string{"3"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "servers"`).
		WillReturnError(errors.New("duplicate key value"))
	mock.ExpectRollback()

	err := reconcile.Apply(db, plan, "server_id")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "the delete never runs and the pass rolls back")
}
