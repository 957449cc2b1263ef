package pipeline

import (
	"fmt"
	"strings"
)

// Step names, in execution order.
const (
	StepDownload      = "download"
	StepBasicCleaning = "basic_cleaning"
	StepDataCheck     = "data_check"
	StepDataSplit     = "data_split"
	StepTrain         = "train_random_forest"
	StepTestModel     = "test_regression_model"
)

// Order is the fixed execution order of all known steps.
var Order = []string{
	StepDownload,
	StepBasicCleaning,
	StepDataCheck,
	StepDataSplit,
	StepTrain,
	StepTestModel,
}

// DefaultSteps is the set selected by "all". It excludes
// test_regression_model: that step runs against a model already promoted to
// prod and must always be requested explicitly.
var DefaultSteps = []string{
	StepDownload,
	StepBasicCleaning,
	StepDataCheck,
	StepDataSplit,
	StepTrain,
}

// ActiveSteps expands a steps selection into the set of steps to run.
// "all" selects DefaultSteps; otherwise the value is a comma-separated list
// of step names. Unknown names are an error. The returned set carries no
// ordering; execution always follows Order.
func ActiveSteps(spec string) (map[string]bool, error) {
	active := make(map[string]bool)

	if strings.TrimSpace(spec) == "all" {
		for _, s := range DefaultSteps {
			active[s] = true
		}
		return active, nil
	}

	known := make(map[string]bool, len(Order))
	for _, s := range Order {
		known[s] = true
	}

	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("unknown step %q (known: %s)", name, strings.Join(Order, ", "))
		}
		active[name] = true
	}

	if len(active) == 0 {
		return nil, fmt.Errorf("no steps selected from %q", spec)
	}
	return active, nil
}
