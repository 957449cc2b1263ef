package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/initializ/mlpipe/config"
	"github.com/initializ/mlpipe/validate"
)

var strict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate pipeline.yaml against the schema and semantic rules",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	result := &validate.ValidationResult{}

	// Structural check against the JSON schema first; a document that fails
	// here usually cannot be parsed meaningfully.
	schemaErrs, err := validate.ValidateConfigDocument(data)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	result.Errors = append(result.Errors, schemaErrs...)

	if len(schemaErrs) == 0 {
		cfg, err := config.ParseConfig(data)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			semantic := validate.ValidateConfig(cfg)
			result.Errors = append(result.Errors, semantic.Errors...)
			result.Warnings = append(result.Warnings, semantic.Warnings...)
		}
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
	}

	if strict && len(result.Warnings) > 0 {
		if !result.IsValid() {
			return fmt.Errorf("validation failed: %d error(s), %d warning(s) treated as errors in strict mode",
				len(result.Errors), len(result.Warnings))
		}
		return fmt.Errorf("validation failed: %d warning(s) treated as errors in strict mode", len(result.Warnings))
	}

	if !result.IsValid() {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}

	fmt.Println("Validation passed.")
	return nil
}
