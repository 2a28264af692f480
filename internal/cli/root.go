package cli

import (
	"csv2vtt/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "csv2vtt",
	Short: "Convert caption spreadsheets to WebVTT subtitles",
	Long: `csv2vtt converts tabular caption data (CSV rows of timestamp ranges,
speakers, and text) into a valid WebVTT subtitle file.

Column names are configurable, loose timestamp formats are normalized,
and every problem in the input is reported in a single pass.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
