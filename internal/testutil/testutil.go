// Package testutil provides an in-memory store and fixtures for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens a migrated in-memory SQLite database that is closed when the
// test ends.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// Fixtures creates records with sensible defaults.
type Fixtures struct {
	t  testing.TB
	db *gorm.DB
}

func NewFixtures(t testing.TB, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

func (f *Fixtures) create(record interface{}) {
	f.t.Helper()
	require.NoError(f.t, f.db.Create(record).Error)
}

func (f *Fixtures) Department(name string) *models.Department {
	department := &models.Department{Name: name, Description: name + " department"}
	f.create(department)
	return department
}

func (f *Fixtures) Job(name string, departmentID uint64) *models.Job {
	job := &models.Job{Name: name, Description: name, DepartmentID: departmentID}
	f.create(job)
	return job
}

func (f *Fixtures) Collaborator(name, lastName string, jobID uint64) *models.Collaborator {
	collaborator := &models.Collaborator{
		Name:     name,
		LastName: lastName,
		Gender:   models.GenderMale,
		Age:      30,
		IsActive: true,
		JobID:    jobID,
	}
	f.create(collaborator)
	return collaborator
}

func (f *Fixtures) Project(name string, start, final models.Date) *models.Project {
	project := &models.Project{
		Name:        name,
		Description: name,
		Customer:    "ACME",
		StartDate:   start,
		FinalDate:   final,
	}
	f.create(project)
	return project
}

func (f *Fixtures) Member(projectID, collaboratorID uint64) *models.ProjectCollaborator {
	member := &models.ProjectCollaborator{ProjectID: projectID, CollaboratorID: collaboratorID}
	f.create(member)
	return member
}

func (f *Fixtures) Assignment(name string, collaboratorID, projectID uint64, start, final models.Date) *models.Assignment {
	assignment := &models.Assignment{
		Name:           name,
		StartDate:      start,
		FinalDate:      final,
		CollaboratorID: collaboratorID,
		ProjectID:      projectID,
	}
	f.create(assignment)
	return assignment
}

func (f *Fixtures) User(username string, role models.Role, departmentID uint64) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		Email:        username + "@example.com",
		Role:         role,
		DepartmentID: departmentID,
	}
	f.create(user)
	return user
}
