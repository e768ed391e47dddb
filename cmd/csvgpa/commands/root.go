package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/csvgpa/internal/gpa"
	"github.com/wonny/csvgpa/pkg/config"
	"github.com/wonny/csvgpa/pkg/logger"
)

// defaultCSVFile is read when no path argument is given.
const defaultCSVFile = "students.csv"

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "csvgpa [csv_file]",
	Short: "Read a students CSV file and print the average GPA",
	Long: `csvgpa

Reads a CSV file with a header row that includes a GPA column (e.g. "gpa"),
averages the valid values and prints the result rounded to two decimals.
Rows with a missing, malformed or out-of-range GPA are skipped.

Examples:
  csvgpa
  csvgpa grades/2026_spring.csv`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAverage,
}

// Execute runs the root command and reports any failure on stderr as a
// single line. The caller maps the returned error to an exit status via
// ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if isExpectedFailure(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		}
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func runAverage(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.New(cfg)

	path := defaultCSVFile
	if len(args) == 1 {
		path = args[0]
	}

	file, err := gpa.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &notFoundError{path: path}
		}
		return err
	}
	defer file.Close()

	log.WithField("file", path).Debug("computing average GPA")

	avg, err := gpa.NewAggregator(log).ComputeAverage(file.Headers(), file)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", avg)
	return nil
}
