package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestDB connects to the database named by TEST_DATABASE_URL. Tests in
// this package need a real PostgreSQL instance and are skipped when the
// variable is unset, so the rest of the suite runs without one.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn, 5, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

// createTestUser inserts a user with a unique email so tests stay independent
// without truncating shared tables.
func createTestUser(t *testing.T, ctx context.Context, db *database.DB) user.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashedStr := string(hashed)

	userRepo := postgresql.NewUserRepository(db)
	created, err := userRepo.Create(ctx, user.User{
		Email:        fmt.Sprintf("test-%d@example.com", time.Now().UnixNano()),
		PasswordHash: &hashedStr,
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	return created
}
