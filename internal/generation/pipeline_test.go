package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawhale/worksim/internal/sink"
)

var wantPhaseOrder = []string{
	"organizations", "teams", "users", "projects", "sections", "tasks",
	"subtasks", "comments", "tags", "task_tags", "attachments", "custom_fields",
}

func runTestPipeline(t *testing.T, cfg Config) (*sink.MemorySink, *Result) {
	t.Helper()
	mem := sink.NewMemorySink()
	p := NewPipeline(cfg, testDepartments, nil, nil, mem)
	result, err := p.Run(context.Background())
	require.NoError(t, err)
	return mem, result
}

func TestPipeline_PhaseOrderMatchesDependencies(t *testing.T) {
	mem, result := runTestPipeline(t, testConfig())

	assert.Equal(t, wantPhaseOrder, mem.Tables())

	require.Len(t, result.Counts, len(wantPhaseOrder))
	for i, c := range result.Counts {
		assert.Equal(t, wantPhaseOrder[i], c.Table)
		assert.Equal(t, len(mem.Batches[i].Rows), c.Rows)
	}
	assert.Equal(t, result.TotalRows(), sumRows(mem))
}

func sumRows(mem *sink.MemorySink) int {
	total := 0
	for _, b := range mem.Batches {
		total += len(b.Rows)
	}
	return total
}

func TestPipeline_DeterministicAcrossRuns(t *testing.T) {
	a, _ := runTestPipeline(t, testConfig())
	b, _ := runTestPipeline(t, testConfig())

	require.Len(t, b.Batches, len(a.Batches))
	for i := range a.Batches {
		assert.Equal(t, a.Batches[i].Table, b.Batches[i].Table)
		assert.Equal(t, a.Batches[i].Columns, b.Batches[i].Columns)
		assert.Equal(t, a.Batches[i].Rows, b.Batches[i].Rows, "table %s differs", a.Batches[i].Table)
	}
}

func TestPipeline_SeedChangesDataset(t *testing.T) {
	a, _ := runTestPipeline(t, testConfig())

	cfg := testConfig()
	cfg.Seed = 1337
	b, _ := runTestPipeline(t, cfg)

	assert.NotEqual(t, a.Batch("tasks").Rows, b.Batch("tasks").Rows)
}

// columnValues extracts one column from a recorded batch as strings,
// skipping NULLs.
func columnValues(t *testing.T, b sink.Batch, column string) []string {
	t.Helper()
	idx := -1
	for i, c := range b.Columns {
		if c == column {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0, "column %s not in %s", column, b.Table)

	var out []string
	for _, row := range b.Rows {
		if row[idx] == nil {
			continue
		}
		s, ok := row[idx].(string)
		require.True(t, ok, "column %s holds %T", column, row[idx])
		out = append(out, s)
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func TestPipeline_ReferentialIntegrity(t *testing.T) {
	mem, _ := runTestPipeline(t, testConfig())

	orgs := toSet(columnValues(t, mem.Batch("organizations"), "org_id"))
	teams := toSet(columnValues(t, mem.Batch("teams"), "team_id"))
	users := toSet(columnValues(t, mem.Batch("users"), "user_id"))
	projects := toSet(columnValues(t, mem.Batch("projects"), "project_id"))
	tasks := toSet(columnValues(t, mem.Batch("tasks"), "task_id"))
	tags := toSet(columnValues(t, mem.Batch("tags"), "tag_id"))

	checks := []struct {
		table, column string
		parents       map[string]bool
	}{
		{"teams", "org_id", orgs},
		{"users", "team_id", teams},
		{"projects", "team_id", teams},
		{"sections", "project_id", projects},
		{"tasks", "project_id", projects},
		{"tasks", "assignee_id", users},
		{"subtasks", "parent_task_id", tasks},
		{"subtasks", "assignee_id", users},
		{"comments", "task_id", tasks},
		{"comments", "user_id", users},
		{"task_tags", "task_id", tasks},
		{"task_tags", "tag_id", tags},
		{"attachments", "task_id", tasks},
		{"custom_fields", "project_id", projects},
	}

	for _, check := range checks {
		for _, ref := range columnValues(t, mem.Batch(check.table), check.column) {
			require.True(t, check.parents[ref],
				"%s.%s references unknown id %s", check.table, check.column, ref)
		}
	}
}

func TestPipeline_GlobalIDUniqueness(t *testing.T) {
	mem, _ := runTestPipeline(t, testConfig())

	idColumns := map[string]string{
		"organizations": "org_id",
		"teams":         "team_id",
		"users":         "user_id",
		"projects":      "project_id",
		"sections":      "section_id",
		"tasks":         "task_id",
		"subtasks":      "subtask_id",
		"comments":      "comment_id",
		"tags":          "tag_id",
		"attachments":   "attachment_id",
		"custom_fields": "custom_field_id",
	}

	seen := map[string]bool{}
	for table, column := range idColumns {
		for _, id := range columnValues(t, mem.Batch(table), column) {
			require.False(t, seen[id], "id %s repeated across the dataset", id)
			seen[id] = true
		}
	}
}

func TestPipeline_InvalidConfigFailsBeforeEmitting(t *testing.T) {
	cfg := testConfig()
	cfg.TotalTasks = 0

	mem := sink.NewMemorySink()
	p := NewPipeline(cfg, testDepartments, nil, nil, mem)
	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Empty(t, mem.Batches)
}

func TestPipeline_EmptyCatalogFailsBeforeEmitting(t *testing.T) {
	mem := sink.NewMemorySink()
	p := NewPipeline(testConfig(), staticCatalog{}, nil, nil, mem)
	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Empty(t, mem.Batches)
}

func TestPipeline_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mem := sink.NewMemorySink()
	p := NewPipeline(testConfig(), testDepartments, nil, nil, mem)
	_, err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, mem.Batches)
}

func TestPipeline_TaskCapHolds(t *testing.T) {
	cfg := testConfig()
	cfg.TotalTasks = 80
	mem, _ := runTestPipeline(t, cfg)

	assert.LessOrEqual(t, len(mem.Batch("tasks").Rows), cfg.TotalTasks)
}
