package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/utils"
)

// decode mirrors ShouldBindJSON: decode the body, then run the binding tags.
func decode(t *testing.T, body string, req interface{}) error {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), req))
	return binding.Validator.ValidateStruct(req)
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		req   func() interface{}
		valid bool
	}{
		{"department", `{"name":"Sales"}`, func() interface{} { return &DepartmentCreateRequest{} }, true},
		{"department without name", `{"description":"nameless"}`, func() interface{} { return &DepartmentCreateRequest{} }, false},
		{"department rename to empty", `{"name":""}`, func() interface{} { return &DepartmentUpdateRequest{} }, false},
		{"department description only", `{"description":"Sells"}`, func() interface{} { return &DepartmentUpdateRequest{} }, true},
		{"job without department", `{"name":"Backend"}`, func() interface{} { return &JobCreateRequest{} }, false},
		{"job", `{"name":"Backend","department_id":1}`, func() interface{} { return &JobCreateRequest{} }, true},
		{"user with unknown role", `{"username":"ceo","password":"supersecret","role":"ADMIN","department_id":1}`, func() interface{} { return &UserCreateRequest{} }, false},
		{"user with short password", `{"username":"ceo","password":"short","role":"LEADER","department_id":1}`, func() interface{} { return &UserCreateRequest{} }, false},
		{"user", `{"username":"ceo","password":"supersecret","role":"C-LEVEL","department_id":1}`, func() interface{} { return &UserCreateRequest{} }, true},
		{"user role change", `{"role":"LEADER"}`, func() interface{} { return &UserUpdateRequest{} }, true},
		{"user role change to unknown", `{"role":"ADMIN"}`, func() interface{} { return &UserUpdateRequest{} }, false},
		{"collaborator with unknown gender", `{"name":"Elias","last_name":"Quintero","gender":"OTHER","job_id":1}`, func() interface{} { return &CollaboratorCreateRequest{} }, false},
		{"collaborator without gender", `{"name":"Elias","last_name":"Quintero","job_id":1}`, func() interface{} { return &CollaboratorCreateRequest{} }, true},
		{"collaborator without job", `{"name":"Elias","last_name":"Quintero"}`, func() interface{} { return &CollaboratorCreateRequest{} }, false},
		{"collaborator gender change", `{"gender":"FEMALE"}`, func() interface{} { return &CollaboratorUpdateRequest{} }, true},
		{"collaborator moved to job 0", `{"job_id":0}`, func() interface{} { return &CollaboratorUpdateRequest{} }, false},
		{"project without dates", `{"name":"Project rock"}`, func() interface{} { return &ProjectCreateRequest{} }, false},
		{"project", `{"name":"Project rock","start_date":"2023-01-01","final_date":"2023-12-31"}`, func() interface{} { return &ProjectCreateRequest{} }, true},
		{"assignment without dates", `{"name":"missing dates","collaborator_id":1,"project_id":1}`, func() interface{} { return &AssignmentCreateRequest{} }, false},
		{"assignment without project", `{"start_date":"2023-02-10","final_date":"2023-02-20","collaborator_id":1}`, func() interface{} { return &AssignmentCreateRequest{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decode(t, tt.body, tt.req())
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCollaboratorCreateRequest_Model(t *testing.T) {
	var req CollaboratorCreateRequest
	require.NoError(t, decode(t, `{"name":"Elias","last_name":"Quintero","gender":"MALE","age":31,"job_id":1}`, &req))

	collaborator, err := req.Model()
	require.NoError(t, err)
	assert.True(t, collaborator.IsActive, "collaborators are active unless stated otherwise")
	assert.Equal(t, models.GenderMale, collaborator.Gender)

	inactive := false
	req.IsActive = &inactive
	collaborator, err = req.Model()
	require.NoError(t, err)
	assert.False(t, collaborator.IsActive)
}

func TestCollaboratorUpdateRequest_Changes(t *testing.T) {
	var req CollaboratorUpdateRequest
	require.NoError(t, decode(t, `{"is_active":false,"age":40}`, &req))

	changes, err := req.Changes()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"is_active": false, "age": 40}, changes)

	_, err = CollaboratorUpdateRequest{}.Changes()
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestUserCreateRequest_Model(t *testing.T) {
	req := UserCreateRequest{
		Username:     "  ceo ",
		Password:     "supersecret",
		Role:         models.RoleCLevel,
		DepartmentID: 1,
	}

	user, err := req.Model()
	require.NoError(t, err)
	assert.Equal(t, "ceo", user.Username)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "supersecret"))
}

func TestUserUpdateRequest_HashesPassword(t *testing.T) {
	var req UserUpdateRequest
	require.NoError(t, decode(t, `{"password":"anothersecret"}`, &req))

	changes, err := req.Changes()
	require.NoError(t, err)
	hash, ok := changes["password"].(string)
	require.True(t, ok)
	assert.True(t, utils.CheckPassword(hash, "anothersecret"))
}

func TestProjectUpdateRequest_Changes(t *testing.T) {
	var req ProjectUpdateRequest
	require.NoError(t, decode(t, `{"final_date":"2023-12-31","customer":"Globex"}`, &req))

	changes, err := req.Changes()
	require.NoError(t, err)
	assert.Equal(t, "Globex", changes["customer"])
	assert.Equal(t, models.NewDate(2023, time.December, 31), changes["final_date"])
	assert.NotContains(t, changes, "start_date")
}

func TestAssignmentCreateRequest_Model(t *testing.T) {
	var req AssignmentCreateRequest
	require.NoError(t, decode(t, `{"name":"tarea de backend","start_date":"2023-02-10","final_date":"2023-02-20","collaborator_id":1,"project_id":1}`, &req))

	assignment, err := req.Model()
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2023, time.February, 10), assignment.StartDate)
	assert.Equal(t, models.NewDate(2023, time.February, 20), assignment.FinalDate)
}
