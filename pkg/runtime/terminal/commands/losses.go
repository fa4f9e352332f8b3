package commands

import (
	"fmt"

	"github.com/de-tools/war-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/war-atlas/pkg/services/analysis"
	"github.com/de-tools/war-atlas/pkg/services/losses"
	"github.com/spf13/cobra"
)

type LossesCmd struct {
	kind   string
	run    Runner
	tables *export.TableWriter
}

func NewLossesCmd(run Runner, tables *export.TableWriter) *cobra.Command {
	lc := &LossesCmd{run: run, tables: tables}
	cmd := &cobra.Command{
		Use:   "losses",
		Short: "Print daily Russian losses derived from the cumulative counters",
		RunE:  lc.execute,
	}

	cmd.Flags().StringVar(&lc.kind, "kind", "equipment", "Loss dataset (equipment or personnel)")

	return cmd
}

func (lc *LossesCmd) execute(cmd *cobra.Command, _ []string) error {
	kind, err := losses.ParseKind(lc.kind)
	if err != nil {
		return err
	}

	res, err := lc.run(cmd.Context())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	table, ok := analysis.NewSnapshot(res).Losses(kind)
	if !ok {
		return fmt.Errorf("%s losses are not in the catalog", kind)
	}
	return lc.tables.WriteLosses(table)
}
