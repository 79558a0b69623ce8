package generation

import (
	"strings"
	"testing"

	"github.com/datawhale/worksim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAttachments_EmptyTasks(t *testing.T) {
	g := testContext(testConfig())
	attachments, err := GenerateAttachments(g, nil)
	require.NoError(t, err)
	assert.Empty(t, attachments)
}

func TestGenerateAttachments_Invariants(t *testing.T) {
	g := testContext(testConfig())
	_, _, _, tasks := generateThrough(t, g)

	attachments, err := GenerateAttachments(g, tasks)
	require.NoError(t, err)
	require.NotEmpty(t, attachments)

	taskByID := map[string]*domain.Task{}
	for _, task := range tasks {
		taskByID[task.ID] = task
	}

	namesPerTask := map[string]map[string]bool{}
	for _, a := range attachments {
		task := taskByID[a.TaskID]
		require.NotNil(t, task, "attachment %s has unknown task", a.ID)

		if namesPerTask[a.TaskID] == nil {
			namesPerTask[a.TaskID] = map[string]bool{}
		}
		require.False(t, namesPerTask[a.TaskID][a.FileName],
			"duplicate file name %q within task", a.FileName)
		namesPerTask[a.TaskID][a.FileName] = true

		ext := a.FileName[strings.LastIndex(a.FileName, "."):]
		assert.Equal(t, attachmentMIMETypes[ext], a.FileType)
		assert.Equal(t, "https://files.worksim.dev/"+a.FileName, a.URL)

		assert.GreaterOrEqual(t, a.FileSizeKB, 50)
		assert.LessOrEqual(t, a.FileSizeKB, 5000)

		assert.False(t, a.UploadedAt.Before(task.CreatedAt))
		assert.False(t, a.UploadedAt.After(*task.DueDate))
	}

	for taskID, names := range namesPerTask {
		assert.LessOrEqual(t, len(names), 3, "task %s", taskID)
	}
}

func TestFileNameFor_Sanitized(t *testing.T) {
	s := NewSource(1)
	name := fileNameFor(s, "Fix edge cases in Billing! (v2)")
	assert.Regexp(t, `^[a-z0-9_]+\.[a-z]+$`, name)
	assert.True(t, strings.HasPrefix(name, "fix_edge_cases_in_billing"))
}
