package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/war-atlas/pkg/bootstrap"
	"github.com/de-tools/war-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/war-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/war-atlas/pkg/services/analysis"
	"github.com/de-tools/war-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	configPath  string
	catalogPath string
	output      io.Writer
	logOutput   io.Writer
	run         commands.Runner
	rootCmd     *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	// Runner replaces the analysis run, mostly for tests.
	Runner commands.Runner
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{output: opts.Output, logOutput: opts.LogOutput, run: opts.Runner}
	if cli.run == nil {
		cli.run = cli.analyze
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Front-line movement and loss analysis of the Russia-Ukraine war",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to the YAML configuration file")
	cmd.PersistentFlags().StringVar(&cli.catalogPath, "catalog", "", "Path to the datasets.ini catalog (overrides config)")

	reporter := export.NewReporter(cli.output)
	tables := export.NewTableWriter(cli.output)

	cmd.AddCommand(commands.NewReportCmd(cli.run, reporter))
	cmd.AddCommand(commands.NewFrontsCmd(cli.run, tables))
	cmd.AddCommand(commands.NewLossesCmd(cli.run, tables))

	return cmd
}

func (cli *CLI) analyze(ctx context.Context) (*analysis.Result, error) {
	cfg, err := config.LoadConfig(cli.configPath)
	if err != nil {
		return nil, err
	}
	if cli.catalogPath != "" {
		cfg.Catalog.Path = cli.catalogPath
	}

	logger, err := bootstrap.NewLogger(cli.logOutput, cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithContext(ctx)

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize atlas: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to close database")
		}
	}()

	return app.Analysis.Run(ctx)
}
