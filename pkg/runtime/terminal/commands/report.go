package commands

import (
	"fmt"

	"github.com/de-tools/war-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/war-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	run      Runner
	reporter *export.Reporter
}

func NewReportCmd(run Runner, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{run: run, reporter: reporter}
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full analysis report",
		RunE:  rc.execute,
	}
}

func (rc *ReportCmd) execute(cmd *cobra.Command, _ []string) error {
	res, err := rc.run(cmd.Context())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	return rc.reporter.Handle(report.Build(res))
}
