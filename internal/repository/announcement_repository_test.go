package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/testutil"
)

func TestAnnouncementRepository_ListBetween(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	announcement := &models.Announcement{Name: "Reorg", Description: "Teams moved", UserID: 1}
	require.NoError(t, repo.Create(ctx, announcement))
	assert.False(t, announcement.Date.IsZero(), "date is assigned on insert")

	now := time.Now()
	found, err := repo.ListBetween(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Reorg", found[0].Name)

	found, err = repo.ListBetween(ctx, now.Add(time.Hour), now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestUserRepository_CreateWithDepartment(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	department := &models.Department{Name: "Development"}
	user := &models.User{Username: "root", PasswordHash: "hash", Role: models.RoleCLevel}
	require.NoError(t, repo.CreateWithDepartment(ctx, department, user))
	assert.Equal(t, department.ID, user.DepartmentID)

	found, err := repo.FindByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// the username is taken, so the second department must be rolled back
	err = repo.CreateWithDepartment(ctx, &models.Department{Name: "Sales"}, &models.User{Username: "root", PasswordHash: "hash", Role: models.RoleLeader})
	assert.ErrorIs(t, err, ErrCreateUser)

	var count int64
	require.NoError(t, db.Model(&models.Department{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
