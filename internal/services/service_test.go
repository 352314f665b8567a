package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zemedic/zemedic-be/internal/database"
	"github.com/zemedic/zemedic-be/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1) // a second in-memory connection would be a fresh database
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, svc *UserService, email string, role models.Role) models.User {
	t.Helper()
	input := CreateUserInput{
		Email:     email,
		Password:  "pw1",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	if role == models.RoleDoctor {
		input.MedicalLicenseID = "MD-12345"
	}
	user, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	return user
}
