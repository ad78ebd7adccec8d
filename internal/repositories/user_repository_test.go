package repositories

import (
	"fmt"
	"os"
	"testing"
	"time"

	"mychild_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testDB подключается к postgres из DATABASE_URL, без него тесты
// пропускаются. Каждый тест работает в транзакции с откатом.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set, skipping repository integration tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func testUser(phone string) *models.User {
	return &models.User{
		FirstName:       "Awa",
		LastName:        "Traoré",
		Phone:           phone,
		PasswordHash:    "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
		BirthDate:       "2010-01-01",
		Country:         "Burkina Faso",
		Nationality:     "Burkinabè",
		Role:            models.UserRoleUser,
		IsActive:        true,
		Approved:        false,
		PendingApproval: true,
	}
}

func uniquePhone() string {
	return fmt.Sprintf("+226%d", time.Now().UnixNano()%1e10)
}

func TestCreateAndFindByPhone(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository()
	phone := uniquePhone()

	require.NoError(t, repo.Create(db, testUser(phone)))

	found, err := repo.FindByPhone(db, phone)
	require.NoError(t, err)
	assert.Equal(t, phone, found.Phone)
	assert.True(t, found.IsPending())
}

func TestCreateDuplicatePhone(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository()
	phone := uniquePhone()

	require.NoError(t, repo.Create(db, testUser(phone)))

	err := repo.Create(db, testUser(phone))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestFindByPhoneNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository()

	_, err := repo.FindByPhone(db, uniquePhone())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApproveTransitionsOnce(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository()
	phone := uniquePhone()

	user := testUser(phone)
	require.NoError(t, repo.Create(db, user))

	require.NoError(t, repo.Approve(db, user.ID))

	approved, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
	assert.False(t, approved.PendingApproval)
	assert.True(t, approved.IsActive)

	// Заявка уже решена, условный апдейт ничего не находит
	err = repo.Approve(db, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetActive(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository()

	user := testUser(uniquePhone())
	require.NoError(t, repo.Create(db, user))

	require.NoError(t, repo.SetActive(db, user.ID, false))

	disabled, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.False(t, disabled.IsActive)
}
