package models

// All lists every persisted model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Department{},
		&User{},
		&Job{},
		&Collaborator{},
		&Project{},
		&ProjectCollaborator{},
		&Assignment{},
		&Announcement{},
	}
}
