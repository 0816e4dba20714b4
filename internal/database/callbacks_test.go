package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avtanos/vetcard/internal/domain"
)

type recordedQuery struct {
	operation string
	table     string
}

type fakeRecorder struct {
	queries []recordedQuery
	stats   []sql.DBStats
}

func (r *fakeRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	r.queries = append(r.queries, recordedQuery{operation: operation, table: table})
}

func (r *fakeRecorder) UpdateDBStats(stats sql.DBStats) {
	r.stats = append(r.stats, stats)
}

func TestRegisterMetricsCallbacks(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Partner{}))

	recorder := &fakeRecorder{}
	RegisterMetricsCallbacks(db, recorder)

	partner := &domain.Partner{Name: "VetPlus", PartnerType: domain.PartnerTypeClinic, Address: "a"}
	require.NoError(t, db.Create(partner).Error)

	var partners []domain.Partner
	require.NoError(t, db.Find(&partners).Error)

	partner.Name = "VetPlus 24/7"
	require.NoError(t, db.Save(partner).Error)
	require.NoError(t, db.Delete(partner).Error)

	var operations []string
	for _, q := range recorder.queries {
		assert.Equal(t, "partners", q.table)
		operations = append(operations, q.operation)
	}
	assert.Contains(t, operations, "insert")
	assert.Contains(t, operations, "select")
	assert.Contains(t, operations, "update")
	assert.Contains(t, operations, "delete")
}
