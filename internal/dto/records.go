package dto

import (
	"errors"
	"strings"

	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/utils"
)

// ErrNoChanges is returned by update requests that carry no fields.
var ErrNoChanges = errors.New("no fields to update")

// changeSet collects the columns an update request sets.
type changeSet map[string]interface{}

func (s changeSet) set(column string, value interface{}, present bool) {
	if present {
		s[column] = value
	}
}

func (s changeSet) result() (map[string]interface{}, error) {
	if len(s) == 0 {
		return nil, ErrNoChanges
	}
	return s, nil
}

func derefString(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

// Departments

type DepartmentCreateRequest struct {
	Name        string `json:"name" binding:"required,max=64"`
	Description string `json:"description"`
}

func (r DepartmentCreateRequest) Model() (*models.Department, error) {
	return &models.Department{Name: r.Name, Description: r.Description}, nil
}

type DepartmentUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=64"`
	Description *string `json:"description"`
}

func (r DepartmentUpdateRequest) Changes() (map[string]interface{}, error) {
	changes := changeSet{}
	name, ok := derefString(r.Name)
	changes.set("name", name, ok)
	description, ok := derefString(r.Description)
	changes.set("description", description, ok)
	return changes.result()
}

// Jobs

type JobCreateRequest struct {
	Name         string `json:"name" binding:"required,max=64"`
	Description  string `json:"description"`
	DepartmentID uint64 `json:"department_id" binding:"required,gt=0"`
}

func (r JobCreateRequest) Model() (*models.Job, error) {
	return &models.Job{Name: r.Name, Description: r.Description, DepartmentID: r.DepartmentID}, nil
}

type JobUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=64"`
	Description *string `json:"description"`
}

func (r JobUpdateRequest) Changes() (map[string]interface{}, error) {
	changes := changeSet{}
	name, ok := derefString(r.Name)
	changes.set("name", name, ok)
	description, ok := derefString(r.Description)
	changes.set("description", description, ok)
	return changes.result()
}

// Users

type UserCreateRequest struct {
	Username     string      `json:"username" binding:"required,min=3,max=64"`
	Password     string      `json:"password" binding:"required,min=8"`
	Email        string      `json:"email" binding:"omitempty,email"`
	Role         models.Role `json:"role" binding:"required,oneof=C-LEVEL LEADER"`
	DepartmentID uint64      `json:"department_id" binding:"required,gt=0"`
}

// Model hashes the password; the plain text never reaches the store.
func (r UserCreateRequest) Model() (*models.User, error) {
	hash, err := utils.HashPassword(r.Password)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Username:     strings.TrimSpace(r.Username),
		PasswordHash: hash,
		Email:        r.Email,
		Role:         r.Role,
		DepartmentID: r.DepartmentID,
	}, nil
}

type UserUpdateRequest struct {
	Password     *string      `json:"password" binding:"omitempty,min=8"`
	Email        *string      `json:"email" binding:"omitempty,email"`
	Role         *models.Role `json:"role" binding:"omitempty,oneof=C-LEVEL LEADER"`
	DepartmentID *uint64      `json:"department_id" binding:"omitempty,gt=0"`
}

func (r UserUpdateRequest) Changes() (map[string]interface{}, error) {
	changes := changeSet{}
	if r.Password != nil {
		hash, err := utils.HashPassword(*r.Password)
		if err != nil {
			return nil, err
		}
		changes["password"] = hash
	}
	if r.Role != nil {
		changes["role"] = *r.Role
	}
	email, ok := derefString(r.Email)
	changes.set("email", email, ok)
	if r.DepartmentID != nil {
		changes["department_id"] = *r.DepartmentID
	}
	return changes.result()
}

// Collaborators

type CollaboratorCreateRequest struct {
	Name     string        `json:"name" binding:"required,max=64"`
	LastName string        `json:"last_name" binding:"required,max=64"`
	Gender   models.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Age      int           `json:"age" binding:"gte=0"`
	IsActive *bool         `json:"is_active"`
	JobID    uint64        `json:"job_id" binding:"required,gt=0"`
}

// Model maps the request; collaborators are active unless stated otherwise.
func (r CollaboratorCreateRequest) Model() (*models.Collaborator, error) {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &models.Collaborator{
		Name:     r.Name,
		LastName: r.LastName,
		Gender:   r.Gender,
		Age:      r.Age,
		IsActive: active,
		JobID:    r.JobID,
	}, nil
}

type CollaboratorUpdateRequest struct {
	Name     *string        `json:"name" binding:"omitempty,min=1,max=64"`
	LastName *string        `json:"last_name" binding:"omitempty,min=1,max=64"`
	Gender   *models.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Age      *int           `json:"age" binding:"omitempty,gte=0"`
	IsActive *bool          `json:"is_active"`
	JobID    *uint64        `json:"job_id" binding:"omitempty,gt=0"`
}

func (r CollaboratorUpdateRequest) Changes() (map[string]interface{}, error) {
	changes := changeSet{}
	name, ok := derefString(r.Name)
	changes.set("name", name, ok)
	lastName, ok := derefString(r.LastName)
	changes.set("last_name", lastName, ok)
	if r.Gender != nil {
		changes["gender"] = *r.Gender
	}
	if r.Age != nil {
		changes["age"] = *r.Age
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	if r.JobID != nil {
		changes["job_id"] = *r.JobID
	}
	return changes.result()
}

// Projects

type ProjectCreateRequest struct {
	Name        string       `json:"name" binding:"required,max=64"`
	Description string       `json:"description"`
	Customer    string       `json:"customer" binding:"max=64"`
	StartDate   *models.Date `json:"start_date" binding:"required"`
	FinalDate   *models.Date `json:"final_date" binding:"required"`
}

func (r ProjectCreateRequest) Model() (*models.Project, error) {
	return &models.Project{
		Name:        r.Name,
		Description: r.Description,
		Customer:    r.Customer,
		StartDate:   *r.StartDate,
		FinalDate:   *r.FinalDate,
	}, nil
}

type ProjectUpdateRequest struct {
	Name        *string      `json:"name" binding:"omitempty,min=1,max=64"`
	Description *string      `json:"description"`
	Customer    *string      `json:"customer" binding:"omitempty,max=64"`
	StartDate   *models.Date `json:"start_date"`
	FinalDate   *models.Date `json:"final_date"`
}

func (r ProjectUpdateRequest) Changes() (map[string]interface{}, error) {
	changes := changeSet{}
	name, ok := derefString(r.Name)
	changes.set("name", name, ok)
	description, ok := derefString(r.Description)
	changes.set("description", description, ok)
	customer, ok := derefString(r.Customer)
	changes.set("customer", customer, ok)
	if r.StartDate != nil {
		changes["start_date"] = *r.StartDate
	}
	if r.FinalDate != nil {
		changes["final_date"] = *r.FinalDate
	}
	return changes.result()
}

// Assignments

type AssignmentCreateRequest struct {
	Name           string       `json:"name" binding:"max=64"`
	StartDate      *models.Date `json:"start_date" binding:"required"`
	FinalDate      *models.Date `json:"final_date" binding:"required"`
	CollaboratorID uint64       `json:"collaborator_id" binding:"required,gt=0"`
	ProjectID      uint64       `json:"project_id" binding:"required,gt=0"`
}

func (r AssignmentCreateRequest) Model() (*models.Assignment, error) {
	return &models.Assignment{
		Name:           r.Name,
		StartDate:      *r.StartDate,
		FinalDate:      *r.FinalDate,
		CollaboratorID: r.CollaboratorID,
		ProjectID:      r.ProjectID,
	}, nil
}

type AssignmentUpdateRequest struct {
	Name      *string      `json:"name" binding:"omitempty,max=64"`
	StartDate *models.Date `json:"start_date"`
	FinalDate *models.Date `json:"final_date"`
}

func (r AssignmentUpdateRequest) Changes() (map[string]interface{}, error) {
	changes := changeSet{}
	name, ok := derefString(r.Name)
	changes.set("name", name, ok)
	if r.StartDate != nil {
		changes["start_date"] = *r.StartDate
	}
	if r.FinalDate != nil {
		changes["final_date"] = *r.FinalDate
	}
	return changes.result()
}
