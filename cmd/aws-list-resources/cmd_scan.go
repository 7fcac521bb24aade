package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/welldone-cloud/aws-list-resources/config"
)

var (
	scanRegions         string
	scanInclude         string
	scanExclude         string
	scanOnlyShowCounts  bool
	scanOnlyStoreCounts bool
	scanShowStats       bool
	scanWorkers         int
	scanOutputDir       string
	scanIncludeDefaults bool
	scanExclusionsFile  string
	scanHistoryDB       string
	scanMetricsAddr     string
	scanConfigFile      string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Enumerate resources in the target regions",
	Long: `Enumerate all resources the account holds in the target regions and write
them to a JSON report.

For every region, the supported resource type catalog is read from the
CloudFormation registry, filtered by the include/exclude patterns, and each
surviving (region, type) pair is listed via the Cloud Control API on a
bounded worker pool. Types that cannot be listed (access denied, required
parameters, throttling) are recorded in the report and never abort the run.`,
	Example: `  aws-list-resources scan --regions us-east-1,eu-central-1
  aws-list-resources scan --regions ALL
  aws-list-resources scan --regions us-east-1 --include-resource-types "AWS::EC2::*"
  aws-list-resources scan --regions ALL --exclude-resource-types "AWS::IAM::*" --only-show-counts`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanRegions, "regions", "", "comma-separated list of target regions or 'ALL'")
	scanCmd.Flags().StringVar(&scanInclude, "include-resource-types", "*", "only list the specified comma-separated resource types (supports wildcards)")
	scanCmd.Flags().StringVar(&scanExclude, "exclude-resource-types", "", "do not list the specified comma-separated resource types (supports wildcards)")
	scanCmd.Flags().BoolVar(&scanOnlyShowCounts, "only-show-counts", false, "only show resource counts instead of listing their full identifiers")
	scanCmd.Flags().BoolVar(&scanOnlyStoreCounts, "only-store-counts", false, "only store resource counts in the report")
	scanCmd.Flags().BoolVar(&scanShowStats, "show-stats", false, "print per-region statistics after the run")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 16, "number of parallel list operations")
	scanCmd.Flags().StringVarP(&scanOutputDir, "output-dir", "o", "results", "directory for the JSON report")
	scanCmd.Flags().BoolVar(&scanIncludeDefaults, "include-default-resources", false, "keep resources AWS creates in every account")
	scanCmd.Flags().StringVar(&scanExclusionsFile, "exclusions-file", "", "YAML file replacing the built-in default-resource table")
	scanCmd.Flags().StringVar(&scanHistoryDB, "history-db", "results/history.db", "run history database path (empty disables history)")
	scanCmd.Flags().StringVar(&scanMetricsAddr, "metrics", "", "expose Prometheus metrics on this address during the run")
	scanCmd.Flags().StringVar(&scanConfigFile, "config", "", "optional YAML config file (flags take precedence)")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if scanConfigFile != "" {
		var err error
		cfg, err = config.Load(scanConfigFile)
		if err != nil {
			return err
		}
	}
	applyScanFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	return newScanCommand(cfg).Run(cmd.Context())
}

// applyScanFlags overlays flags the user actually set onto the config, so a
// config file keeps its values unless overridden.
func applyScanFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("regions") || len(cfg.Regions) == 0 {
		cfg.Regions = splitList(scanRegions)
	}
	if flags.Changed("include-resource-types") {
		cfg.IncludeResourceTypes = splitList(scanInclude)
	}
	if flags.Changed("exclude-resource-types") {
		cfg.ExcludeResourceTypes = splitList(scanExclude)
	}
	if flags.Changed("only-show-counts") || flags.Changed("only-store-counts") {
		cfg.OnlyCounts = scanOnlyShowCounts || scanOnlyStoreCounts
	}
	if flags.Changed("show-stats") {
		cfg.ShowStats = scanShowStats
	}
	if flags.Changed("workers") {
		cfg.Workers = scanWorkers
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = scanOutputDir
	}
	if flags.Changed("include-default-resources") {
		cfg.IncludeDefaultResources = scanIncludeDefaults
	}
	if flags.Changed("exclusions-file") {
		cfg.ExclusionsFile = scanExclusionsFile
	}
	if flags.Changed("history-db") {
		cfg.HistoryDB = scanHistoryDB
	}
	if flags.Changed("metrics") {
		cfg.MetricsAddr = scanMetricsAddr
	}
	if rootProfile != "" {
		cfg.Profile = rootProfile
	}
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
