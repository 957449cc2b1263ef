package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/initializ/mlpipe/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent pipeline runs from the local ledger",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}
	workDir := filepath.Dir(cfgPath)

	dbPath := filepath.Join(workDir, ".mlpipe", "history.db")
	if _, err := os.Stat(dbPath); err != nil {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ledger, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening run ledger: %w", err)
	}
	defer ledger.Close() //nolint:errcheck

	records, err := ledger.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("reading run ledger: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTEP\tSTATUS\tSTARTED\tDURATION\tCOMPONENT")
	for _, r := range records {
		duration := "-"
		if !r.FinishedAt.IsZero() {
			duration = r.FinishedAt.Sub(r.StartedAt).Round(100 * time.Millisecond).String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Step, r.Status, r.StartedAt.Format("2006-01-02 15:04:05"), duration, r.Component)
	}
	return w.Flush()
}
