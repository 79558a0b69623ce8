package sink

import "github.com/datawhale/worksim/internal/domain"

// Batch builders flatten domain records into insertable rows. Row order
// preserves the generation order of the source slice.

func Organizations(orgs ...*domain.Organization) Batch {
	b := Batch{
		Table: "organizations",
		Columns: []string{
			"org_id", "name", "industry", "size", "created_at",
			"description", "headquarters", "domain",
		},
	}
	for _, o := range orgs {
		b.Rows = append(b.Rows, []any{
			o.ID, o.Name, o.Industry, o.Size, dateValue(o.CreatedAt),
			o.Description, o.Headquarters, o.Domain,
		})
	}
	return b
}

func Teams(teams []*domain.Team) Batch {
	b := Batch{
		Table: "teams",
		Columns: []string{
			"team_id", "org_id", "name", "department", "description", "created_at",
		},
	}
	for _, t := range teams {
		b.Rows = append(b.Rows, []any{
			t.ID, t.OrgID, t.Name, t.Department, t.Description, dateValue(t.CreatedAt),
		})
	}
	return b
}

func Users(users []*domain.User) Batch {
	b := Batch{
		Table: "users",
		Columns: []string{
			"user_id", "team_id", "name", "email", "role", "is_active", "joined_at",
		},
	}
	for _, u := range users {
		b.Rows = append(b.Rows, []any{
			u.ID, u.TeamID, u.Name, u.Email, u.Role, boolValue(u.IsActive), dateValue(u.JoinedAt),
		})
	}
	return b
}

func Projects(projects []*domain.Project) Batch {
	b := Batch{
		Table: "projects",
		Columns: []string{
			"project_id", "team_id", "department", "name", "description",
			"status", "start_date", "end_date", "created_at",
		},
	}
	for _, p := range projects {
		b.Rows = append(b.Rows, []any{
			p.ID, p.TeamID, p.Department, p.Name, p.Description,
			string(p.Status), dateValue(p.StartDate), nullableDate(p.EndDate), dateValue(p.CreatedAt),
		})
	}
	return b
}

func Sections(sections []*domain.Section) Batch {
	b := Batch{
		Table: "sections",
		Columns: []string{
			"section_id", "project_id", "name", "position", "created_at",
		},
	}
	for _, s := range sections {
		b.Rows = append(b.Rows, []any{
			s.ID, s.ProjectID, s.Name, s.Position, dateValue(s.CreatedAt),
		})
	}
	return b
}

func Tasks(tasks []*domain.Task) Batch {
	b := Batch{
		Table: "tasks",
		Columns: []string{
			"task_id", "project_id", "assignee_id", "name", "description",
			"priority", "status", "completed", "created_at", "due_date", "completed_at",
		},
	}
	for _, t := range tasks {
		b.Rows = append(b.Rows, []any{
			t.ID, t.ProjectID, nullableString(t.AssigneeID), t.Name, t.Description,
			string(t.Priority), string(t.Status), boolValue(t.Completed),
			dateValue(t.CreatedAt), nullableDate(t.DueDate), nullableDate(t.CompletedAt),
		})
	}
	return b
}

func Subtasks(subtasks []*domain.Subtask) Batch {
	b := Batch{
		Table: "subtasks",
		Columns: []string{
			"subtask_id", "parent_task_id", "assignee_id", "name", "description",
			"status", "completed", "created_at", "due_date", "completed_at",
		},
	}
	for _, s := range subtasks {
		b.Rows = append(b.Rows, []any{
			s.ID, s.ParentTaskID, nullableString(s.AssigneeID), s.Name, s.Description,
			string(s.Status), boolValue(s.Completed),
			dateValue(s.CreatedAt), nullableDate(s.DueDate), nullableDate(s.CompletedAt),
		})
	}
	return b
}

func Comments(comments []*domain.Comment) Batch {
	b := Batch{
		Table: "comments",
		Columns: []string{
			"comment_id", "task_id", "user_id", "text", "created_at", "is_edited",
		},
	}
	for _, c := range comments {
		b.Rows = append(b.Rows, []any{
			c.ID, c.TaskID, c.UserID, c.Text, dateValue(c.CreatedAt), boolValue(c.IsEdited),
		})
	}
	return b
}

func Tags(tags []*domain.Tag) Batch {
	b := Batch{
		Table:   "tags",
		Columns: []string{"tag_id", "name", "color"},
	}
	for _, t := range tags {
		b.Rows = append(b.Rows, []any{t.ID, t.Name, t.Color})
	}
	return b
}

func TaskTags(links []*domain.TaskTag) Batch {
	b := Batch{
		Table:   "task_tags",
		Columns: []string{"task_id", "tag_id"},
	}
	for _, l := range links {
		b.Rows = append(b.Rows, []any{l.TaskID, l.TagID})
	}
	return b
}

func Attachments(attachments []*domain.Attachment) Batch {
	b := Batch{
		Table: "attachments",
		Columns: []string{
			"attachment_id", "task_id", "file_name", "file_type",
			"file_size_kb", "uploaded_at", "url",
		},
	}
	for _, a := range attachments {
		b.Rows = append(b.Rows, []any{
			a.ID, a.TaskID, a.FileName, a.FileType,
			a.FileSizeKB, dateValue(a.UploadedAt), a.URL,
		})
	}
	return b
}

func CustomFields(fields []*domain.CustomField) Batch {
	b := Batch{
		Table: "custom_fields",
		Columns: []string{
			"custom_field_id", "project_id", "name", "type", "possible_values",
		},
	}
	for _, f := range fields {
		b.Rows = append(b.Rows, []any{
			f.ID, f.ProjectID, f.Name, string(f.Type), nullableString(f.PossibleValues),
		})
	}
	return b
}
