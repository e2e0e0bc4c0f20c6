package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-management-api/internal/config"
	"github.com/yukikurage/hr-management-api/internal/dto"
	"github.com/yukikurage/hr-management-api/internal/middleware"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers over db and registers
// every route.
func NewRouter(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	// Repositories
	departmentStore := repository.NewRecordStore[models.Department](db)
	jobStore := repository.NewRecordStore[models.Job](db)
	userStore := repository.NewRecordStore[models.User](db)
	collaboratorStore := repository.NewRecordStore[models.Collaborator](db)
	projectStore := repository.NewRecordStore[models.Project](db)
	assignmentStore := repository.NewRecordStore[models.Assignment](db)

	userRepo := repository.NewUserRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	collaboratorRepo := repository.NewCollaboratorRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg.SecretKey, cfg.AccessTokenExpire)
	calendarService := services.NewCalendarService(assignmentRepo)
	collaboratorService := services.NewCollaboratorService(collaboratorRepo, assignmentRepo)
	assignmentService := services.NewAssignmentService(assignmentStore, membershipRepo)
	announcementService := services.NewAnnouncementService(announcementRepo)
	membershipService := services.NewMembershipService(membershipRepo, projectStore, collaboratorStore, announcementService)

	departmentRecords := services.NewRecordService(departmentStore, "departments")
	jobRecords := services.NewRecordService(jobStore, "jobs")
	userRecords := services.NewRecordService(userStore, "users")
	collaboratorRecords := services.NewRecordService(collaboratorStore, "collaborators")
	projectRecords := services.NewRecordService(projectStore, "projects")
	assignmentRecords := services.NewRecordService(assignmentStore, "assignments")

	// Handlers
	authHandler := NewAuthHandler(authService, logger)
	calendarHandler := NewCalendarHandler(calendarService, logger)
	collaboratorHandler := NewCollaboratorHandler(collaboratorRecords, collaboratorService, logger)
	projectHandler := NewProjectHandler(collaboratorService, membershipService, logger)
	assignmentHandler := NewAssignmentHandler(assignmentService, logger)
	announcementHandler := NewAnnouncementHandler(announcementService, logger)

	departments := NewRecordHandler(departmentRecords, logger, RecordHandlerConfig[models.Department]{
		Name: "department", Param: "name", Key: repository.DepartmentByName,
	})
	jobs := NewRecordHandler(jobRecords, logger, RecordHandlerConfig[models.Job]{
		Name: "job", Param: "name", Key: repository.JobByName,
	})
	users := NewRecordHandler(userRecords, logger, RecordHandlerConfig[models.User]{
		Name: "user", Param: "username", Key: repository.UserByUsername,
	})
	collaborators := NewRecordHandler(collaboratorRecords, logger, RecordHandlerConfig[models.Collaborator]{
		Name: "collaborator", Param: "collaborator_id", Key: repository.ByID[models.Collaborator](), Numeric: true,
	})
	projects := NewRecordHandler(projectRecords, logger, RecordHandlerConfig[models.Project]{
		Name: "project", Param: "project_id", Key: repository.ByID[models.Project](), Numeric: true,
	})
	assignments := NewRecordHandler(assignmentRecords, logger, RecordHandlerConfig[models.Assignment]{
		Name: "assignment", Param: "assignment_id", Key: repository.ByID[models.Assignment](), Numeric: true,
	})

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "HR Management API is running",
		})
	})

	requireAuth := middleware.RequireAuth(authService, logger)
	cLevel := middleware.RequireRoles(models.RoleCLevel)
	anyRole := middleware.RequireRoles(models.RoleCLevel, models.RoleLeader)

	api := r.Group("/api")
	{
		api.POST("/login/", authHandler.Login)

		// Everything below requires a bearer token
		protected := api.Group("", requireAuth)

		protected.GET("/calendar/:start_filter/:final_filter", cLevel, calendarHandler.GetCalendar)

		announcementsGroup := protected.Group("/announcements", cLevel)
		{
			announcementsGroup.GET("/today", announcementHandler.Today)
			announcementsGroup.GET("/:start_date/:final_date", announcementHandler.Between)
		}

		departmentsGroup := protected.Group("/departments")
		{
			departmentsGroup.GET("/", anyRole, departments.List)
			departmentsGroup.GET("/count", cLevel, departments.Count)
			departmentsGroup.GET("/:name", anyRole, departments.Get)
			departmentsGroup.POST("/", cLevel, CreateRecord[models.Department, dto.DepartmentCreateRequest](departments))
			departmentsGroup.PATCH("/:name", cLevel, UpdateRecord[models.Department, dto.DepartmentUpdateRequest](departments))
			departmentsGroup.DELETE("/:name", cLevel, departments.Delete)
		}

		jobsGroup := protected.Group("/jobs")
		{
			jobsGroup.GET("/", anyRole, jobs.List)
			jobsGroup.GET("/:name", anyRole, jobs.Get)
			jobsGroup.POST("/", cLevel, CreateRecord[models.Job, dto.JobCreateRequest](jobs))
			jobsGroup.PATCH("/:name", cLevel, UpdateRecord[models.Job, dto.JobUpdateRequest](jobs))
			jobsGroup.DELETE("/:name", cLevel, jobs.Delete)
		}

		usersGroup := protected.Group("/users")
		{
			usersGroup.GET("/", anyRole, users.List)
			usersGroup.GET("/me", authHandler.GetCurrentUser)
			usersGroup.GET("/:username", anyRole, users.Get)
			usersGroup.POST("/", cLevel, CreateRecord[models.User, dto.UserCreateRequest](users))
			usersGroup.PATCH("/:username", cLevel, UpdateRecord[models.User, dto.UserUpdateRequest](users))
			usersGroup.DELETE("/:username", cLevel, users.Delete)
		}

		collaboratorsGroup := protected.Group("/collaborators")
		{
			collaboratorsGroup.GET("/", anyRole, collaborators.List)
			collaboratorsGroup.GET("/count", cLevel, collaborators.Count)
			collaboratorsGroup.GET("/count_actives", cLevel, collaboratorHandler.CountActive)
			collaboratorsGroup.GET("/count/:job_id", cLevel, collaboratorHandler.CountByJob)
			collaboratorsGroup.GET("/available/:job_id/:date", cLevel, collaboratorHandler.Available)
			collaboratorsGroup.GET("/:collaborator_id", anyRole, collaborators.Get)
			collaboratorsGroup.GET("/:collaborator_id/assignments", anyRole, collaboratorHandler.Assignments)
			collaboratorsGroup.POST("/", cLevel, CreateRecord[models.Collaborator, dto.CollaboratorCreateRequest](collaborators))
			collaboratorsGroup.PATCH("/:collaborator_id", cLevel, UpdateRecord[models.Collaborator, dto.CollaboratorUpdateRequest](collaborators))
			collaboratorsGroup.DELETE("/:collaborator_id", cLevel, collaborators.Delete)
		}

		projectsGroup := protected.Group("/projects")
		{
			projectsGroup.GET("/", anyRole, projects.List)
			projectsGroup.GET("/count", cLevel, projects.Count)
			projectsGroup.GET("/:project_id", anyRole, projects.Get)
			projectsGroup.GET("/:project_id/collaborators", anyRole, projectHandler.Collaborators)
			projectsGroup.GET("/:project_id/assignments", anyRole, projectHandler.Assignments)
			projectsGroup.POST("/", cLevel, CreateRecord[models.Project, dto.ProjectCreateRequest](projects))
			projectsGroup.POST("/:project_id/add/:collaborator_id", cLevel, projectHandler.AddCollaborator)
			projectsGroup.PATCH("/:project_id", cLevel, UpdateRecord[models.Project, dto.ProjectUpdateRequest](projects))
			projectsGroup.DELETE("/:project_id", cLevel, projects.Delete)
			projectsGroup.DELETE("/remove/:project_id/:collaborator_id", cLevel, projectHandler.RemoveCollaborator)
		}

		assignmentsGroup := protected.Group("/assignments", anyRole)
		{
			assignmentsGroup.GET("/", assignments.List)
			assignmentsGroup.GET("/:assignment_id", assignments.Get)
			assignmentsGroup.POST("/", assignmentHandler.CreateAssignment)
			assignmentsGroup.PATCH("/:assignment_id", UpdateRecord[models.Assignment, dto.AssignmentUpdateRequest](assignments))
			assignmentsGroup.DELETE("/:assignment_id", assignments.Delete)
		}
	}

	return r
}
