package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAssignmentIndexes, downAssignmentIndexes)
}

var assignmentIndexes = []struct {
	table   string
	name    string
	columns string
}{
	// calendar window scan
	{"assignments", "idx_assignments_dates", "start_date, final_date"},
	{"assignments", "idx_assignments_project_id", "project_id"},
	{"assignments", "idx_assignments_collaborator_id", "collaborator_id"},
	{"collaborators", "idx_collaborators_job_id", "job_id"},
}

func upAssignmentIndexes(ctx context.Context, tx *sql.Tx) error {
	for _, idx := range assignmentIndexes {
		if err := createIndex(ctx, tx, idx.table, idx.name, idx.columns); err != nil {
			return err
		}
	}
	return nil
}

func downAssignmentIndexes(ctx context.Context, tx *sql.Tx) error {
	for _, idx := range assignmentIndexes {
		if err := dropIndex(ctx, tx, idx.table, idx.name); err != nil {
			return err
		}
	}
	return nil
}
