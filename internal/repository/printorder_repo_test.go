package repository_test

import (
	"path/filepath"
	"testing"
	"time"

	"printflow/internal/models"
	"printflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *repository.PrintOrderRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PrintOrder{}))
	return repository.NewPrintOrderRepository(db)
}

func sampleOrder(orderID string) *models.PrintOrder {
	return &models.PrintOrder{
		Name:       "Alex",
		FilePath:   "uploads/abc123",
		PrintColor: "bw",
		Copies:     2,
		TotalPrice: 10,
		OrderID:    orderID,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)

	o := sampleOrder("order_A")
	require.NoError(t, repo.Create(o))
	require.NotZero(t, o.ID, "store-assigned id expected")
	assert.False(t, o.Printed, "printed defaults to false")

	got, err := repo.GetByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)
	assert.Equal(t, "order_A", got.OrderID)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDuplicateOrderIDsRepresentable(t *testing.T) {
	repo := newTestRepo(t)

	first := sampleOrder("order_dup")
	second := sampleOrder("order_dup")
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second), "order_id has no unique constraint")

	got, err := repo.GetByOrderID("order_dup")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID, "lookup returns the oldest match")

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestListPendingOldestFirst(t *testing.T) {
	repo := newTestRepo(t)

	old := sampleOrder("order_old")
	old.CreatedAt = time.Now().Add(-2 * time.Hour)
	newer := sampleOrder("order_new")
	newer.CreatedAt = time.Now().Add(-time.Hour)
	done := sampleOrder("order_done")
	done.Printed = true

	require.NoError(t, repo.Create(newer))
	require.NoError(t, repo.Create(old))
	require.NoError(t, repo.Create(done))

	pending, err := repo.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "order_old", pending[0].OrderID)
	assert.Equal(t, "order_new", pending[1].OrderID)
}

func TestMarkPrinted(t *testing.T) {
	repo := newTestRepo(t)

	o := sampleOrder("order_P")
	require.NoError(t, repo.Create(o))

	require.NoError(t, repo.MarkPrinted(o.ID))
	got, err := repo.GetByID(o.ID)
	require.NoError(t, err)
	assert.True(t, got.Printed)

	err = repo.MarkPrinted(4242)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
