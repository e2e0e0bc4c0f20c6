package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/yukikurage/hr-management-api/internal/config"
	"github.com/yukikurage/hr-management-api/internal/database"
	"github.com/yukikurage/hr-management-api/internal/logging"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/services"
)

var cli struct {
	DepartmentName        string `help:"Name of the first department. Defaults to BOOTSTRAP_DEPARTMENT_NAME."`
	DepartmentDescription string `help:"Description of the first department. Defaults to BOOTSTRAP_DEPARTMENT_DESCRIPTION."`
	Username              string `short:"u" help:"Username of the first C-LEVEL user. Defaults to BOOTSTRAP_USERNAME."`
	Password              string `short:"p" help:"Password of the first C-LEVEL user. Defaults to BOOTSTRAP_PASSWORD."`
	Email                 string `help:"Email of the first C-LEVEL user. Defaults to BOOTSTRAP_EMAIL."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description("Creates the first department and its C-LEVEL user."),
		kong.ShortUsageOnError(),
	)

	cfg := config.Load()

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Development: true})
	kctx.FatalIfErrorf(err)
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg, logger)
	kctx.FatalIfErrorf(err)
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()
	kctx.FatalIfErrorf(database.Migrate(ctx, db, cfg.DBDriver, logger))

	bootstrap := services.NewBootstrapService(repository.NewUserRepository(db))
	user, err := bootstrap.FirstRecords(ctx, services.FirstRecordsInput{
		DepartmentName:        choose(cli.DepartmentName, cfg.BootstrapDepartmentName),
		DepartmentDescription: choose(cli.DepartmentDescription, cfg.BootstrapDepartmentDescription),
		Username:              choose(cli.Username, cfg.BootstrapUsername),
		Password:              choose(cli.Password, cfg.BootstrapPassword),
		Email:                 choose(cli.Email, cfg.BootstrapEmail),
	})
	kctx.FatalIfErrorf(err, "bootstrap failed")

	fmt.Printf("Bootstrap successful. User %s (%s) belongs to department %d.\n",
		user.Username, user.Role, user.DepartmentID)
}

func choose(value string, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(fallback)
}
