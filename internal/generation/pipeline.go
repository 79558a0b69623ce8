package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/datawhale/worksim/internal/domain"
	"github.com/datawhale/worksim/internal/sink"
)

// PhaseCount is one entity type's contribution to a finished run.
type PhaseCount struct {
	Table string
	Rows  int
}

// Result summarizes a finished run.
type Result struct {
	Counts  []PhaseCount
	Elapsed time.Duration
}

// TotalRows returns the number of records across all entity types.
func (r *Result) TotalRows() int {
	total := 0
	for _, c := range r.Counts {
		total += c.Rows
	}
	return total
}

// Pipeline walks the entity dependency graph in topological order,
// materializing each entity type as a function of its already-generated
// parents and handing every batch to the sink before the next phase runs.
// Generation is a single linear pass: no step ever observes a sibling
// that has not been materialized yet.
type Pipeline struct {
	cfg      Config
	catalog  Catalog
	profiles ProfileSource
	text     TextSource
	out      sink.Sink
	obs      Observer
	log      zerolog.Logger
}

// PipelineOption customizes a Pipeline.
type PipelineOption func(*Pipeline)

// WithObserver installs a progress observer.
func WithObserver(obs Observer) PipelineOption {
	return func(p *Pipeline) {
		if obs != nil {
			p.obs = obs
		}
	}
}

// WithLogger installs a structured logger for phase-level events.
func WithLogger(log zerolog.Logger) PipelineOption {
	return func(p *Pipeline) { p.log = log }
}

// NewPipeline assembles a pipeline over the given collaborators. text may
// be nil; generation then uses static fallbacks for all free-text fields.
func NewPipeline(cfg Config, cat Catalog, profiles ProfileSource, text TextSource, out sink.Sink, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		cfg:      cfg,
		catalog:  cat,
		profiles: profiles,
		text:     text,
		out:      out,
		obs:      NoopObserver{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the full generation pass. Configuration problems abort
// before any record is emitted; cancellation is honored between phases,
// since a phase materializes fully before downstream phases consume it.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	if p.catalog == nil || len(p.catalog.Departments()) == 0 {
		return nil, fmt.Errorf("%w: department catalog is empty", ErrConfig)
	}

	g := NewContext(p.cfg, p.catalog, p.profiles, p.text)

	// Parent collections shared across the phase closures below. Each is
	// assigned exactly once, before any child phase reads it.
	var (
		org      *domain.Organization
		teams    []*domain.Team
		users    []*domain.User
		projects []*domain.Project
		tasks    []*domain.Task
		tags     []*domain.Tag
	)

	phases := []struct {
		name string
		gen  func(ctx context.Context) (sink.Batch, error)
	}{
		{"organizations", func(ctx context.Context) (sink.Batch, error) {
			var err error
			org, err = GenerateOrganization(g)
			if err != nil {
				return sink.Batch{}, err
			}
			return sink.Organizations(org), nil
		}},
		{"teams", func(ctx context.Context) (sink.Batch, error) {
			var err error
			teams, err = GenerateTeams(g, org)
			return sink.Teams(teams), err
		}},
		{"users", func(ctx context.Context) (sink.Batch, error) {
			var err error
			users, err = GenerateUsers(g, teams)
			return sink.Users(users), err
		}},
		{"projects", func(ctx context.Context) (sink.Batch, error) {
			var err error
			projects, err = GenerateProjects(ctx, g, teams)
			return sink.Projects(projects), err
		}},
		{"sections", func(ctx context.Context) (sink.Batch, error) {
			sections, err := GenerateSections(g, projects)
			return sink.Sections(sections), err
		}},
		{"tasks", func(ctx context.Context) (sink.Batch, error) {
			var err error
			tasks, err = GenerateTasks(ctx, g, projects, users)
			return sink.Tasks(tasks), err
		}},
		{"subtasks", func(ctx context.Context) (sink.Batch, error) {
			subtasks, err := GenerateSubtasks(ctx, g, tasks, users)
			return sink.Subtasks(subtasks), err
		}},
		{"comments", func(ctx context.Context) (sink.Batch, error) {
			comments, err := GenerateComments(ctx, g, tasks, users)
			return sink.Comments(comments), err
		}},
		{"tags", func(ctx context.Context) (sink.Batch, error) {
			var err error
			tags, err = GenerateTags(g)
			return sink.Tags(tags), err
		}},
		{"task_tags", func(ctx context.Context) (sink.Batch, error) {
			return sink.TaskTags(AssignTags(g, tasks, tags)), nil
		}},
		{"attachments", func(ctx context.Context) (sink.Batch, error) {
			attachments, err := GenerateAttachments(g, tasks)
			return sink.Attachments(attachments), err
		}},
		{"custom_fields", func(ctx context.Context) (sink.Batch, error) {
			fields, err := GenerateCustomFields(g, projects)
			return sink.CustomFields(fields), err
		}},
	}

	res := &Result{Counts: make([]PhaseCount, 0, len(phases))}
	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.obs.PhaseStarted(phase.name, i+1, len(phases))
		phaseStart := time.Now()

		batch, err := phase.gen(ctx)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", phase.name, err)
		}
		if err := p.out.InsertBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("persisting %s: %w", phase.name, err)
		}

		elapsed := time.Since(phaseStart)
		p.obs.PhaseCompleted(PhaseEvent{
			Phase:   phase.name,
			Index:   i + 1,
			Total:   len(phases),
			Records: len(batch.Rows),
			Elapsed: elapsed,
		})
		p.log.Info().
			Str("phase", phase.name).
			Int("records", len(batch.Rows)).
			Dur("elapsed", elapsed).
			Msg("phase complete")

		res.Counts = append(res.Counts, PhaseCount{Table: phase.name, Rows: len(batch.Rows)})
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
