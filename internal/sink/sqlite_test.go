package sink

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawhale/worksim/internal/domain"
	"github.com/datawhale/worksim/internal/testutil"
)

func seedParents(t *testing.T, s *SQLiteSink) (*domain.Organization, *domain.Team) {
	t.Helper()
	ctx := context.Background()

	org := &domain.Organization{
		ID:        "org_1",
		Name:      "DataWhale",
		Industry:  "Software",
		Size:      6000,
		CreatedAt: testutil.Day(2018, time.March, 5),
		Domain:    "datawhale.io",
	}
	require.NoError(t, s.InsertBatch(ctx, Organizations(org)))

	team := &domain.Team{
		ID:         "team_1",
		OrgID:      org.ID,
		Name:       "Engineering Team 1",
		Department: "Engineering",
		CreatedAt:  testutil.Day(2021, time.May, 10),
	}
	require.NoError(t, s.InsertBatch(ctx, Teams([]*domain.Team{team})))
	return org, team
}

func TestSQLiteSink_InsertAndReadBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := NewSQLiteSink(database)
	_, team := seedParents(t, s)

	user := &domain.User{
		ID:       "user_1",
		TeamID:   team.ID,
		Name:     "Jane Doe",
		Email:    "jane.doe@datawhale.io",
		Role:     "Backend Developer",
		IsActive: true,
		JoinedAt: testutil.Day(2022, time.January, 3),
	}
	require.NoError(t, s.InsertBatch(context.Background(), Users([]*domain.User{user})))

	var email string
	var active int
	err := database.QueryRow(`SELECT email, is_active FROM users WHERE user_id = ?`, user.ID).
		Scan(&email, &active)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@datawhale.io", email)
	assert.Equal(t, 1, active)
}

func TestSQLiteSink_EmptyBatchIsNoOp(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := NewSQLiteSink(database)

	require.NoError(t, s.InsertBatch(context.Background(), Users(nil)))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSQLiteSink_ForeignKeysEnforced(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := NewSQLiteSink(database)

	// A team without its organization must be rejected.
	team := &domain.Team{
		ID:         "team_orphan",
		OrgID:      "org_missing",
		Name:       "Ghost Team",
		Department: "Engineering",
		CreatedAt:  testutil.Day(2021, time.May, 10),
	}
	err := s.InsertBatch(context.Background(), Teams([]*domain.Team{team}))
	require.Error(t, err)
}

func TestSQLiteSink_FailedBatchRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := NewSQLiteSink(database)
	_, team := seedParents(t, s)

	good := &domain.User{
		ID: "user_ok", TeamID: team.ID, Name: "A", Email: "a@x.io",
		Role: "Dev", IsActive: true, JoinedAt: testutil.Day(2022, time.April, 1),
	}
	orphan := &domain.User{
		ID: "user_bad", TeamID: "team_missing", Name: "B", Email: "b@x.io",
		Role: "Dev", IsActive: true, JoinedAt: testutil.Day(2022, time.April, 2),
	}
	err := s.InsertBatch(context.Background(), Users([]*domain.User{good, orphan}))
	require.Error(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 0, count, "failed batch must not leave partial rows")
}

func TestSQLiteSink_RowWidthMismatch(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := NewSQLiteSink(database)

	batch := Batch{
		Table:   "tags",
		Columns: []string{"tag_id", "name", "color"},
		Rows:    [][]any{{"tag_1", "Backend"}},
	}
	err := s.InsertBatch(context.Background(), batch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestBatchBuilders_NullableColumns(t *testing.T) {
	due := testutil.Day(2023, time.July, 1)
	task := testutil.NewTestTask("Fix login", testutil.WithDueDate(due))

	batch := Tasks([]*domain.Task{task})
	require.Len(t, batch.Rows, 1)
	row := batch.Rows[0]

	byColumn := map[string]any{}
	for i, col := range batch.Columns {
		byColumn[col] = row[i]
	}
	assert.Nil(t, byColumn["assignee_id"])
	assert.Nil(t, byColumn["completed_at"])
	assert.Equal(t, "2023-07-01", byColumn["due_date"])
	assert.Equal(t, 0, byColumn["completed"])
}
