package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements use IF NOT EXISTS so the
// migration list is safe to re-run against an existing database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Tables are declared in dependency order so a fresh database can be
// created in one pass: every REFERENCES target appears before its
// referrers.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS organizations (
		org_id       TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		industry     TEXT NOT NULL,
		size         INTEGER NOT NULL,
		created_at   TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		headquarters TEXT NOT NULL DEFAULT '',
		domain       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		team_id     TEXT PRIMARY KEY,
		org_id      TEXT NOT NULL REFERENCES organizations(org_id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		department  TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_teams_org ON teams(org_id)`,

	`CREATE TABLE IF NOT EXISTS users (
		user_id   TEXT PRIMARY KEY,
		team_id   TEXT NOT NULL REFERENCES teams(team_id) ON DELETE CASCADE,
		name      TEXT NOT NULL,
		email     TEXT NOT NULL UNIQUE,
		role      TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		joined_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_users_team ON users(team_id)`,

	`CREATE TABLE IF NOT EXISTS projects (
		project_id  TEXT PRIMARY KEY,
		team_id     TEXT NOT NULL REFERENCES teams(team_id) ON DELETE CASCADE,
		department  TEXT NOT NULL,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL
		            CHECK(status IN ('Active','Completed','On Hold','Not Started')),
		start_date  TEXT NOT NULL,
		end_date    TEXT,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_team ON projects(team_id)`,

	`CREATE TABLE IF NOT EXISTS sections (
		section_id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(project_id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sections_project ON sections(project_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		task_id      TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(project_id) ON DELETE CASCADE,
		assignee_id  TEXT REFERENCES users(user_id) ON DELETE SET NULL,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		priority     TEXT NOT NULL
		             CHECK(priority IN ('Low','Medium','High','Critical')),
		status       TEXT NOT NULL
		             CHECK(status IN ('To Do','In Progress','In Review','Done')),
		completed    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		due_date     TEXT,
		completed_at TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS subtasks (
		subtask_id     TEXT PRIMARY KEY,
		parent_task_id TEXT NOT NULL REFERENCES tasks(task_id) ON DELETE CASCADE,
		assignee_id    TEXT REFERENCES users(user_id) ON DELETE SET NULL,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL
		               CHECK(status IN ('To Do','In Progress','In Review','Done')),
		completed      INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		due_date       TEXT,
		completed_at   TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_subtasks_parent ON subtasks(parent_task_id)`,

	`CREATE TABLE IF NOT EXISTS comments (
		comment_id TEXT PRIMARY KEY,
		task_id    TEXT NOT NULL REFERENCES tasks(task_id) ON DELETE CASCADE,
		user_id    TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		is_edited  INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_comments_task ON comments(task_id)`,

	`CREATE TABLE IF NOT EXISTS tags (
		tag_id TEXT PRIMARY KEY,
		name   TEXT NOT NULL UNIQUE,
		color  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS task_tags (
		task_id TEXT NOT NULL REFERENCES tasks(task_id) ON DELETE CASCADE,
		tag_id  TEXT NOT NULL REFERENCES tags(tag_id) ON DELETE CASCADE,
		PRIMARY KEY (task_id, tag_id)
	)`,

	`CREATE TABLE IF NOT EXISTS attachments (
		attachment_id TEXT PRIMARY KEY,
		task_id       TEXT NOT NULL REFERENCES tasks(task_id) ON DELETE CASCADE,
		file_name     TEXT NOT NULL,
		file_type     TEXT NOT NULL,
		file_size_kb  INTEGER NOT NULL,
		uploaded_at   TEXT NOT NULL,
		url           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attachments_task ON attachments(task_id)`,

	`CREATE TABLE IF NOT EXISTS custom_fields (
		custom_field_id TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(project_id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		type            TEXT NOT NULL CHECK(type IN ('number','text','enum')),
		possible_values TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_custom_fields_project ON custom_fields(project_id)`,
}
