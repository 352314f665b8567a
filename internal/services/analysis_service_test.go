package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemedic/zemedic-be/internal/apierr"
	"github.com/zemedic/zemedic-be/internal/models"
)

var testFindings = []models.Finding{
	{Name: "Pneumonia", Location: "Right Lower Lobe", Severity: "Moderate"},
}

var testScores = map[string]float64{"Pneumonia": 0.94}

func TestAnalysisServiceRecordAndGet(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAnalysisService(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "a@x.com", models.RolePatient)

	recorded, err := svc.Record(ctx, owner.ID, "xray", testFindings, testScores)
	require.NoError(t, err)
	assert.NotEmpty(t, recorded.ID)
	assert.Equal(t, owner.ID, recorded.UserID)
	assert.False(t, recorded.CreatedAt.IsZero())

	got, err := svc.Get(ctx, recorded.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, recorded.ID, got.ID)
	assert.Equal(t, "xray", got.ImageType)
	assert.Equal(t, testFindings, got.Findings)
	assert.Equal(t, testScores, got.ConfidenceScores)
	assert.Equal(t, recorded.CreatedAt, got.CreatedAt)
}

func TestAnalysisServiceGetEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAnalysisService(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice@x.com", models.RolePatient)
	bob := createTestUser(t, users, "bob@x.com", models.RolePatient)

	recorded, err := svc.Record(ctx, alice.ID, "mri", testFindings, testScores)
	require.NoError(t, err)

	// A valid id owned by someone else reads the same as a missing record.
	_, err = svc.Get(ctx, recorded.ID, bob.ID)
	assert.ErrorIs(t, err, apierr.ErrNotFound)

	_, err = svc.Get(ctx, "no-such-id", alice.ID)
	assert.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestAnalysisServiceListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAnalysisService(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "a@x.com", models.RolePatient)
	other := createTestUser(t, users, "b@x.com", models.RolePatient)

	base := time.Now().UTC()
	var ids []string
	for i := 0; i < 3; i++ {
		tick := base.Add(time.Duration(i) * time.Second)
		svc.now = func() time.Time { return tick }
		recorded, err := svc.Record(ctx, owner.ID, fmt.Sprintf("type-%d", i), testFindings, testScores)
		require.NoError(t, err)
		ids = append(ids, recorded.ID)
	}

	// Another user's record must not leak into the list.
	_, err := svc.Record(ctx, other.ID, "xray", testFindings, testScores)
	require.NoError(t, err)

	results, err := svc.ListForUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, ids[2], results[0].ID)
	assert.Equal(t, ids[1], results[1].ID)
	assert.Equal(t, ids[0], results[2].ID)
	for i := 1; i < len(results); i++ {
		assert.False(t, results[i].CreatedAt.After(results[i-1].CreatedAt),
			"results must be ordered newest first")
	}
}

func TestAnalysisServiceListCappedAt100(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAnalysisService(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "a@x.com", models.RolePatient)

	base := time.Now().UTC()
	var newestID string
	for i := 0; i < 105; i++ {
		tick := base.Add(time.Duration(i) * time.Millisecond)
		svc.now = func() time.Time { return tick }
		recorded, err := svc.Record(ctx, owner.ID, "xray", testFindings, testScores)
		require.NoError(t, err)
		newestID = recorded.ID
	}

	results, err := svc.ListForUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, results, 100)
	assert.Equal(t, newestID, results[0].ID)
}

func TestAnalysisServiceListEmpty(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAnalysisService(db)

	owner := createTestUser(t, users, "a@x.com", models.RolePatient)

	results, err := svc.ListForUser(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results, "empty history must serialize as [] not null")
}
