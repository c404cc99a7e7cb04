package gormstorage

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/genie-archive/scn/internal/model"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	b := New(db)
	require.NoError(t, b.Init())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBackend_SaveScenario(t *testing.T) {
	b := newTestBackend(t)

	rec := model.ScenarioRecord{
		Path:           "maps/oasis.scn",
		Version:        "1.11",
		PlayerCount:    3,
		UnitGroupCount: 3,
		Slots: []model.PlayerSlotRecord{
			{PlayerIndex: 0, Name: "Hammurabi", Active: true, Gold: 100},
		},
		UnitGroups: []model.UnitGroupRecord{
			{PlayerIndex: 0, UnitCount: 2, Units: []byte(`[{"ID":1},{"ID":2}]`)},
		},
	}
	require.NoError(t, b.SaveScenario(&rec))
	assert.NotZero(t, rec.ID)

	var got model.ScenarioRecord
	err := b.db.Preload("Slots").Preload("UnitGroups").First(&got, rec.ID).Error
	require.NoError(t, err)

	assert.Equal(t, "maps/oasis.scn", got.Path)
	require.Len(t, got.Slots, 1)
	assert.Equal(t, "Hammurabi", got.Slots[0].Name)
	require.Len(t, got.UnitGroups, 1)
	assert.Equal(t, uint32(2), got.UnitGroups[0].UnitCount)
}

func TestBackend_SaveMultiple(t *testing.T) {
	b := newTestBackend(t)

	for _, path := range []string{"a.scn", "b.scn", "c.scn"} {
		require.NoError(t, b.SaveScenario(&model.ScenarioRecord{Path: path, Version: "1.11"}))
	}

	var count int64
	require.NoError(t, b.db.Model(&model.ScenarioRecord{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}
