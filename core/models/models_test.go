package models_test

import (
	"testing"
	"time"

	"qldf/core/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "-", models.Record{Time: 0}.FormatTime())
	assert.Equal(t, "9.050", models.Record{Time: 9050}.FormatTime())
	assert.Equal(t, "1:00.000", models.Record{Time: 60000}.FormatTime())
	assert.Equal(t, "2:03.456", models.Record{Time: 123456}.FormatTime())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", models.Record{}.FormatDate())

	r := models.Record{Date: time.Date(2019, 11, 20, 23, 45, 0, 0, time.UTC)}
	assert.Equal(t, "2019-11-20 23:45:00 UTC", r.FormatDate())
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, "PQL Weapons", models.ModePQLWeapons.String())
	assert.Equal(t, "VQL Strafe", models.ModeVQLStrafe.String())
	assert.Equal(t, "CPM", models.ModeCPM.String())
	assert.Equal(t, "-", models.Mode(models.ModeCount).String())
	assert.False(t, models.Mode(-1).Valid())
}
