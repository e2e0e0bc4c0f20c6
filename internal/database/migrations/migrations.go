package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

var gooseDialects = map[string]string{
	"postgres": "postgres",
	"mysql":    "mysql",
	"sqlite":   "sqlite3",
}

type driverKey struct{}

// WithDriver tells the migrations which database driver they run against.
func WithDriver(ctx context.Context, driver string) context.Context {
	return context.WithValue(ctx, driverKey{}, driver)
}

func driverFrom(ctx context.Context) string {
	driver, _ := ctx.Value(driverKey{}).(string)
	return driver
}

// Up applies every registered migration that has not run yet. goose output
// goes to logger.
func Up(ctx context.Context, db *sql.DB, driver string, logger *zap.Logger) error {
	name, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if err := goose.SetDialect(name); err != nil {
		return err
	}
	goose.SetLogger(zap.NewStdLog(logger.Named("goose")))

	return goose.UpContext(WithDriver(ctx, driver), db, ".")
}

func createIndex(ctx context.Context, tx *sql.Tx, table, name, columns string) error {
	_, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE INDEX %s ON %s (%s)", name, table, columns))
	return err
}

func dropIndex(ctx context.Context, tx *sql.Tx, table, name string) error {
	stmt := fmt.Sprintf("DROP INDEX %s", name)
	if driverFrom(ctx) == "mysql" {
		stmt = fmt.Sprintf("DROP INDEX %s ON %s", name, table)
	}
	_, err := tx.ExecContext(ctx, stmt)
	return err
}
