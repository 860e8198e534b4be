package usecase

import (
	"testing"

	"contacts-backend/internal/contact/domain"
	"contacts-backend/internal/contact/repository"
	"contacts-backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) ContactUsecase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory sqlite: every connection is its own database
	require.NoError(t, db.AutoMigrate(&domain.Contact{}))

	return NewContactUsecase(repository.NewGormContactRepository(db))
}

func TestCreateAndListContacts(t *testing.T) {
	uc := newTestUsecase(t)

	created, err := uc.CreateContact("alice", "Bob", "555-1234", "bob@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.UserID)
	assert.False(t, created.CreateDate.IsZero())

	contacts, err := uc.GetUserContacts("alice")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, created.ID, contacts[0].ID)

	// another user never sees alice's contacts
	others, err := uc.GetUserContacts("bob")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestDeleteContact_Idempotent(t *testing.T) {
	uc := newTestUsecase(t)

	created, err := uc.CreateContact("alice", "Bob", "555-1234", "bob@x.com")
	require.NoError(t, err)

	require.NoError(t, uc.DeleteContact(created.ID))

	contacts, err := uc.GetUserContacts("alice")
	require.NoError(t, err)
	assert.Empty(t, contacts)

	err = uc.DeleteContact(created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
