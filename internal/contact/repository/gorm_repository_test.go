package repository

import (
	"testing"

	"contacts-backend/internal/contact/domain"
	"contacts-backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) ContactRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory sqlite: every connection is its own database
	require.NoError(t, db.AutoMigrate(&domain.Contact{}))

	return NewGormContactRepository(db)
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo := newTestRepo(t)

	contact := &domain.Contact{Name: "Bob", Phone: "555-1234", Email: "bob@x.com", UserID: "u1"}
	require.NoError(t, repo.Create(contact))

	assert.NotEmpty(t, contact.ID)
	assert.False(t, contact.CreateDate.IsZero())
	assert.False(t, contact.UpdateDate.IsZero())
}

func TestFindByUserID_OwnerScoping(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(&domain.Contact{Name: "Bob", UserID: "alice"}))
	require.NoError(t, repo.Create(&domain.Contact{Name: "Carol", UserID: "alice"}))
	require.NoError(t, repo.Create(&domain.Contact{Name: "Mallory", UserID: "eve"}))

	got, err := repo.FindByUserID("alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, "alice", c.UserID)
	}

	empty, err := repo.FindByUserID("nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestDeleteByID(t *testing.T) {
	repo := newTestRepo(t)

	contact := &domain.Contact{Name: "Bob", UserID: "alice"}
	require.NoError(t, repo.Create(contact))

	require.NoError(t, repo.DeleteByID(contact.ID))

	got, err := repo.FindByUserID("alice")
	require.NoError(t, err)
	assert.Empty(t, got)

	// deleting the same id again is a benign not-found
	err = repo.DeleteByID(contact.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
