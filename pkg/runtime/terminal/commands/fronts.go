package commands

import (
	"fmt"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/war-atlas/pkg/services/analysis"
	"github.com/spf13/cobra"
)

type FrontsCmd struct {
	front   string
	monthly bool
	run     Runner
	tables  *export.TableWriter
}

func NewFrontsCmd(run Runner, tables *export.TableWriter) *cobra.Command {
	fc := &FrontsCmd{run: run, tables: tables}
	cmd := &cobra.Command{
		Use:   "fronts",
		Short: "Print the area-delta series of a front",
		RunE:  fc.execute,
	}

	cmd.Flags().StringVar(&fc.front, "front", "", "Front to print (north or east)")
	cmd.Flags().BoolVar(&fc.monthly, "monthly", false, "Print monthly magnitudes instead of daily deltas")
	_ = cmd.MarkFlagRequired("front")

	return cmd
}

func (fc *FrontsCmd) execute(cmd *cobra.Command, _ []string) error {
	front, err := domain.ParseFront(fc.front)
	if err != nil {
		return err
	}

	res, err := fc.run(cmd.Context())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	snap := analysis.NewSnapshot(res)

	if fc.monthly {
		return fc.tables.WriteMonthly(front, snap.Monthly())
	}
	series, ok := snap.Daily(front)
	if !ok {
		return fmt.Errorf("no series for front %s", front)
	}
	return fc.tables.WriteSeries(series)
}
