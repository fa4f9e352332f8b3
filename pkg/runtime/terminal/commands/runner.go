package commands

import (
	"context"

	"github.com/de-tools/war-atlas/pkg/services/analysis"
)

// Runner performs a full analysis run.
type Runner func(ctx context.Context) (*analysis.Result, error)
