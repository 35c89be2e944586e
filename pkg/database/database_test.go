package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

type probe struct {
	ID   int64
	Name string
}

func TestInitDB_SQLite(t *testing.T) {
	db, err := InitDB(Options{Driver: "sqlite", DSN: ":memory:"}, zap.NewNop(), &probe{})
	require.NoError(t, err)

	require.NoError(t, db.Create(&probe{Name: "kawung"}).Error)
	var got probe
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "kawung", got.Name)
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB(Options{Driver: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel("debug"))
	assert.Equal(t, logger.Silent, gormLogLevel("info"))
	assert.Equal(t, logger.Error, gormLogLevel("error"))
}
