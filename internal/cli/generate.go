package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/datawhale/worksim/internal/catalog"
	"github.com/datawhale/worksim/internal/cli/formatter"
	"github.com/datawhale/worksim/internal/content"
	"github.com/datawhale/worksim/internal/db"
	"github.com/datawhale/worksim/internal/generation"
	"github.com/datawhale/worksim/internal/sink"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic workspace dataset",
		Long: `Generate builds the full dataset in dependency order and writes it to a
SQLite database. Every flag can also be set through a WORKSIM_-prefixed
environment variable (e.g. WORKSIM_SEED, WORKSIM_TASKS).`,
		RunE: runGenerate,
	}

	defaults := generation.DefaultConfig()
	cmd.Flags().String("company", "", "organization name (picked from the company catalog when empty)")
	cmd.Flags().Int64("seed", defaults.Seed, "master random seed")
	cmd.Flags().Int("teams", defaults.NumTeams, "number of teams")
	cmd.Flags().Int("users", defaults.TotalUsers, "total number of users")
	cmd.Flags().Int("tasks", defaults.TotalTasks, "global task cap")
	cmd.Flags().Int("tags", defaults.NumTags, "size of the tag pool")
	cmd.Flags().Int("max-tags-per-task", defaults.MaxTagsPerTask, "maximum tags linked to one task")
	cmd.Flags().String("out", "output/worksim.sqlite", "output database path")
	cmd.Flags().Bool("force", false, "overwrite the output database without asking")
	cmd.Flags().Bool("live-companies", false, "fetch the organization name from a live company directory")
	cmd.Flags().String("prompts", "", "file with task name templates, one per line")
	cmd.Flags().Bool("verbose", false, "enable debug logging")

	bindFlags(cmd.Flags())

	return cmd
}

// bindFlags mirrors every flag into viper so WORKSIM_-prefixed environment
// variables can override unset flags.
func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := newLogger(viper.GetBool("verbose"))

	cfg := generation.DefaultConfig()
	cfg.Seed = viper.GetInt64("seed")
	cfg.NumTeams = viper.GetInt("teams")
	cfg.TotalUsers = viper.GetInt("users")
	cfg.TotalTasks = viper.GetInt("tasks")
	cfg.NumTags = viper.GetInt("tags")
	cfg.MaxTagsPerTask = viper.GetInt("max-tags-per-task")
	cfg.CompanyName = resolveCompany(ctx, log)

	if path := viper.GetString("prompts"); path != "" {
		prompts, err := content.LoadPrompts(path)
		if err != nil {
			return err
		}
		cfg.TaskPrompts = prompts
	}

	out := viper.GetString("out")
	if err := confirmOverwrite(out); err != nil {
		return err
	}

	database, err := db.OpenDB(out)
	if err != nil {
		return fmt.Errorf("opening output database: %w", err)
	}
	defer database.Close()

	opts := []generation.PipelineOption{generation.WithLogger(log)}
	if interactive() {
		opts = append(opts, generation.WithObserver(newProgressObserver(os.Stderr)))
	}

	pipeline := generation.NewPipeline(
		cfg,
		catalog.NewStatic(),
		catalog.NewProfiles(cfg.Seed),
		textSource(log),
		sink.NewSQLiteSink(database),
		opts...,
	)

	result, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(cfg, out, result)
	return nil
}

// resolveCompany picks the organization name: the explicit flag wins,
// then the live directory when enabled, then the static catalog default.
func resolveCompany(ctx context.Context, log zerolog.Logger) string {
	if name := viper.GetString("company"); name != "" {
		return name
	}
	if viper.GetBool("live-companies") {
		names, err := catalog.NewLiveCompanySource().Names(ctx, 10)
		if err == nil && len(names) > 0 {
			log.Info().Str("company", names[0]).Msg("company name fetched from live directory")
			return names[0]
		}
		log.Warn().Err(err).Msg("live company fetch failed, using static catalog")
		return catalog.FallbackCompanies(1)[0]
	}
	return generation.DefaultConfig().CompanyName
}

// confirmOverwrite guards an existing output file. Interactive runs get a
// confirmation prompt; non-interactive runs require --force.
func confirmOverwrite(path string) error {
	if path == ":memory:" || viper.GetBool("force") {
		return removeIfExists(path)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if !interactive() {
		return fmt.Errorf("output %s already exists (use --force to overwrite)", path)
	}

	var overwrite bool
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite %s?", path)).
			Description("The existing database will be replaced.").
			Value(&overwrite),
	))
	if err := confirm.Run(); err != nil {
		return err
	}
	if !overwrite {
		return fmt.Errorf("aborted: output %s already exists", path)
	}
	return removeIfExists(path)
}

func removeIfExists(path string) error {
	if path == ":memory:" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing existing output: %w", err)
	}
	return nil
}

// textSource wires the optional LLM-backed description provider. Nil when
// disabled; generation then uses its static fallback text.
func textSource(log zerolog.Logger) generation.TextSource {
	cfg := content.LoadConfig()
	if !cfg.Enabled {
		return nil
	}
	var observer content.Observer = content.NoopObserver{}
	if cfg.LogCalls {
		observer = content.NewLogObserver(log)
	}
	return content.NewOllamaClient(cfg, observer)
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func printSummary(cfg generation.Config, out string, result *generation.Result) {
	fmt.Println(formatter.Header("generation summary"))
	fmt.Printf("%s %s\n", formatter.Dim("company:"), formatter.Bold(cfg.CompanyName))
	fmt.Printf("%s %d\n", formatter.Dim("seed:   "), cfg.Seed)
	fmt.Printf("%s %s\n\n", formatter.Dim("output: "), out)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Table", "Rows"})
	for _, c := range result.Counts {
		tw.AppendRow(table.Row{c.Table, c.Rows})
	}
	tw.AppendFooter(table.Row{"total", result.TotalRows()})
	tw.Render()

	fmt.Println(formatter.Dim(fmt.Sprintf("done in %s", result.Elapsed.Round(time.Millisecond))))
}
