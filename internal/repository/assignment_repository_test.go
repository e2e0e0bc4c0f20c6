package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/testutil"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func day(month time.Month, d int) models.Date {
	return models.NewDate(2023, month, d)
}

type AssignmentRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	fixtures *testutil.Fixtures
	repo     AssignmentRepository

	project      *models.Project
	collaborator *models.Collaborator
}

func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.db = testutil.OpenDB(suite.T())
	suite.fixtures = testutil.NewFixtures(suite.T(), suite.db)
	suite.repo = NewAssignmentRepository(suite.db)

	department := suite.fixtures.Department("Development")
	job := suite.fixtures.Job("Backend", department.ID)
	suite.collaborator = suite.fixtures.Collaborator("Elias", "Rojas", job.ID)
	suite.project = suite.fixtures.Project("Project rock", day(time.January, 1), day(time.December, 31))
	suite.fixtures.Member(suite.project.ID, suite.collaborator.ID)
}

func (suite *AssignmentRepositoryTestSuite) TestListOverlapping_InclusiveBoundaries() {
	suite.fixtures.Assignment("February", suite.collaborator.ID, suite.project.ID, day(time.February, 1), day(time.February, 28))

	tests := []struct {
		name     string
		start    models.Date
		final    models.Date
		expected int
	}{
		{"window ends on start date", day(time.January, 1), day(time.February, 1), 1},
		{"window starts on final date", day(time.February, 28), day(time.March, 31), 1},
		{"window before", day(time.January, 1), day(time.January, 31), 0},
		{"window after", day(time.March, 1), day(time.March, 31), 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			assignments, err := suite.repo.ListOverlapping(context.Background(), tt.start, tt.final)
			suite.Require().NoError(err)
			suite.Len(assignments, tt.expected)
		})
	}
}

func (suite *AssignmentRepositoryTestSuite) TestListOverlapping_PreloadsRoster() {
	teammate := suite.fixtures.Collaborator("Sara", "Lopez", suite.collaborator.JobID)
	suite.fixtures.Assignment("February", suite.collaborator.ID, suite.project.ID, day(time.February, 1), day(time.February, 28))
	suite.fixtures.Assignment("June", suite.collaborator.ID, suite.project.ID, day(time.June, 1), day(time.June, 30))

	assignments, err := suite.repo.ListOverlapping(context.Background(), day(time.February, 1), day(time.February, 28))
	suite.Require().NoError(err)
	suite.Require().Len(assignments, 1)

	assignment := assignments[0]
	suite.Equal("Project rock", assignment.Project.Name)
	suite.Equal("Backend", assignment.Collaborator.Job.Name)

	roster := assignment.Collaborator.Job.Collaborators
	suite.Require().Len(roster, 2)
	suite.Equal(suite.collaborator.ID, roster[0].ID)
	suite.Equal(teammate.ID, roster[1].ID)
	suite.Len(roster[0].Assignments, 2, "roster assignments are not limited to the window")
	suite.Empty(roster[1].Assignments)
}

func (suite *AssignmentRepositoryTestSuite) TestListByCollaboratorAndProject() {
	other := suite.fixtures.Project("Project jazz", day(time.January, 1), day(time.December, 31))
	suite.fixtures.Assignment("B", suite.collaborator.ID, suite.project.ID, day(time.March, 1), day(time.March, 2))
	suite.fixtures.Assignment("A", suite.collaborator.ID, other.ID, day(time.January, 1), day(time.January, 2))

	byCollaborator, err := suite.repo.ListByCollaborator(context.Background(), suite.collaborator.ID)
	suite.Require().NoError(err)
	suite.Require().Len(byCollaborator, 2)
	suite.Equal("A", byCollaborator[0].Name)

	byProject, err := suite.repo.ListByProject(context.Background(), other.ID)
	suite.Require().NoError(err)
	suite.Require().Len(byProject, 1)
	suite.Equal("A", byProject[0].Name)
}

func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}

func TestListOverlapping_StoreFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "assignments"`)).
		WillReturnError(errors.New("connection reset"))

	repo := NewAssignmentRepository(db)
	_, err = repo.ListOverlapping(context.Background(), day(time.January, 1), day(time.January, 31))
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
