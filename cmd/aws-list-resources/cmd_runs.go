package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/welldone-cloud/aws-list-resources/storage"
)

var (
	runsHistoryDB string
	runsLimit     int
)

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Print past run summaries from the history database",
	RunE:  runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().StringVar(&runsHistoryDB, "history-db", "results/history.db", "run history database path")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum number of runs to show (0 for all)")
}

func runRuns(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(runsHistoryDB); err != nil {
		return fmt.Errorf("no run history at %s", runsHistoryDB)
	}

	store, err := storage.Open(runsHistoryDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.List(runsLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIMESTAMP\tACCOUNT\tREGIONS\tRESOURCES\tTYPES\tNOT LISTED\tDURATION\tOUTPUT")
	for _, record := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			record.Timestamp,
			record.AccountID,
			strings.Join(record.Regions, ","),
			record.Resources,
			record.ResourceTypes,
			record.NotListed,
			(time.Duration(record.DurationSeconds*float64(time.Second))).Round(time.Millisecond),
			record.OutputFile,
		)
	}
	return w.Flush()
}
