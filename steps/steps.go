// Package steps implements the fixed pipeline steps. Each step computes the
// parameter map for one external component run and submits it through the
// run context.
package steps

import (
	"strconv"

	"github.com/initializ/mlpipe/pipeline"
)

// Build assembles the pipeline steps for the active set, in the fixed
// execution order.
func Build(active map[string]bool) []pipeline.Step {
	all := []pipeline.Step{
		&DownloadStep{},
		&BasicCleaningStep{},
		&DataCheckStep{},
		&DataSplitStep{},
		&TrainRandomForestStep{},
		&TestRegressionModelStep{},
	}

	var out []pipeline.Step
	for _, s := range all {
		if active[s.Name()] {
			out = append(out, s)
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
