package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/testutil"
)

func newCollaboratorService(t *testing.T) (*CollaboratorService, *testutil.Fixtures) {
	db := testutil.OpenDB(t)
	service := NewCollaboratorService(
		repository.NewCollaboratorRepository(db),
		repository.NewAssignmentRepository(db),
	)
	return service, testutil.NewFixtures(t, db)
}

func TestFilterAvailable(t *testing.T) {
	service, fixtures := newCollaboratorService(t)
	ctx := context.Background()

	department := fixtures.Department("Development")
	backend := fixtures.Job("Backend", department.ID)
	frontend := fixtures.Job("Frontend", department.ID)
	busy := fixtures.Collaborator("Busy", "One", backend.ID)
	endsToday := fixtures.Collaborator("Ends", "Today", backend.ID)
	free := fixtures.Collaborator("Free", "Later", backend.ID)
	idle := fixtures.Collaborator("Idle", "Never", backend.ID)
	fixtures.Collaborator("Other", "Job", frontend.ID)
	project := fixtures.Project("Project rock", day(time.January, 1), day(time.December, 31))

	fixtures.Assignment("a", busy.ID, project.ID, day(time.March, 1), day(time.March, 31))
	fixtures.Assignment("b", endsToday.ID, project.ID, day(time.February, 1), day(time.March, 15))
	fixtures.Assignment("c", free.ID, project.ID, day(time.January, 1), day(time.January, 31))
	fixtures.Assignment("d", free.ID, project.ID, day(time.March, 16), day(time.April, 30))

	available, err := service.FilterAvailable(ctx, day(time.March, 15), backend.ID)
	require.NoError(t, err)

	ids := make([]uint64, 0, len(available))
	for _, c := range available {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []uint64{free.ID, idle.ID}, ids)

	available, err = service.FilterAvailable(ctx, day(time.March, 16), backend.ID)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, endsToday.ID, available[0].ID)
	assert.Equal(t, idle.ID, available[1].ID)
}

func TestFilterAvailable_UnknownJob(t *testing.T) {
	service, _ := newCollaboratorService(t)

	available, err := service.FilterAvailable(context.Background(), day(time.March, 15), 42)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestCollaboratorService_Listings(t *testing.T) {
	service, fixtures := newCollaboratorService(t)
	ctx := context.Background()

	department := fixtures.Department("Development")
	backend := fixtures.Job("Backend", department.ID)
	elias := fixtures.Collaborator("Elias", "Quintero", backend.ID)
	rock := fixtures.Project("Project rock", day(time.January, 1), day(time.December, 31))
	empty := fixtures.Project("Project empty", day(time.January, 1), day(time.December, 31))

	_, err := service.AssignmentsOf(ctx, elias.ID)
	assert.ErrorIs(t, err, ErrNoRecords)

	fixtures.Member(rock.ID, elias.ID)
	fixtures.Assignment("api", elias.ID, rock.ID, day(time.February, 1), day(time.February, 2))

	assignments, err := service.AssignmentsOf(ctx, elias.ID)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)

	members, err := service.MembersOf(ctx, rock.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Elias", members[0].Name)

	_, err = service.MembersOf(ctx, empty.ID)
	assert.ErrorIs(t, err, ErrNoRecords)

	projectAssignments, err := service.ProjectAssignments(ctx, rock.ID)
	require.NoError(t, err)
	assert.Len(t, projectAssignments, 1)

	_, err = service.ProjectAssignments(ctx, empty.ID)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestCreateAssignment(t *testing.T) {
	db := testutil.OpenDB(t)
	fixtures := testutil.NewFixtures(t, db)
	service := NewAssignmentService(
		repository.NewRecordStore[models.Assignment](db),
		repository.NewMembershipRepository(db),
	)
	ctx := context.Background()

	department := fixtures.Department("Development")
	backend := fixtures.Job("Backend", department.ID)
	elias := fixtures.Collaborator("Elias", "Quintero", backend.ID)
	rock := fixtures.Project("Project rock", day(time.January, 1), day(time.December, 31))

	newAssignment := func(name string, start, final models.Date) *models.Assignment {
		return &models.Assignment{
			Name:           name,
			StartDate:      start,
			FinalDate:      final,
			CollaboratorID: elias.ID,
			ProjectID:      rock.ID,
		}
	}

	_, err := service.CreateAssignment(ctx, newAssignment("api", day(time.February, 10), day(time.February, 20)))
	assert.ErrorIs(t, err, ErrCollaboratorNotInProject)

	var count int64
	require.NoError(t, db.Model(&models.Assignment{}).Count(&count).Error)
	assert.Zero(t, count)

	fixtures.Member(rock.ID, elias.ID)

	created, err := service.CreateAssignment(ctx, newAssignment("api", day(time.February, 10), day(time.February, 20)))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	overlapping, err := service.CreateAssignment(ctx, newAssignment("docs", day(time.February, 15), day(time.February, 25)))
	require.NoError(t, err, "overlapping assignments are allowed")
	assert.NotEqual(t, created.ID, overlapping.ID)
}
