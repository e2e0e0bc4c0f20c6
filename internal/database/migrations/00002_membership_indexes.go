package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upMembershipIndexes, downMembershipIndexes)
}

// The unique (project_id, collaborator_id) index covers lookups by project;
// removals and roster queries by collaborator need their own.
func upMembershipIndexes(ctx context.Context, tx *sql.Tx) error {
	return createIndex(ctx, tx, "project_collaborator", "idx_project_collaborator_collaborator_id", "collaborator_id")
}

func downMembershipIndexes(ctx context.Context, tx *sql.Tx) error {
	return dropIndex(ctx, tx, "project_collaborator", "idx_project_collaborator_collaborator_id")
}
