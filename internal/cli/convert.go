package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csv2vtt/internal/csvparse"
	"csv2vtt/internal/webvtt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [csv_file]",
	Short: "Convert a caption CSV file to WebVTT",
	Long: `Convert a caption CSV file to a WebVTT subtitle file.

The CSV needs four columns: a timestamp range, a speaker, the caption text,
and cue display settings. Default column names are "Time Stamp", "Speaker",
"Text", and "Style"; override them with flags or a YAML column map.

A row may leave the timestamp empty to add another caption line to the
previous cue. If the input has problems, every one of them is reported.

Examples:
  csv2vtt convert captions.csv
  csv2vtt convert captions.csv -o episode1.vtt
  csv2vtt convert captions.csv --time-column "Start/End" --text-column "Dialogue"
  csv2vtt convert captions.csv --columns columns.yaml --style theme.css`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		String("columns", "", "Path to a YAML file mapping logical fields to column names")
	convertCmd.Flags().
		String("time-column", "", "Header of the timestamp range column")
	convertCmd.Flags().
		String("speaker-column", "", "Header of the speaker column")
	convertCmd.Flags().
		String("text-column", "", "Header of the caption text column")
	convertCmd.Flags().
		String("style-column", "", "Header of the cue settings column")
	convertCmd.Flags().
		String("style", "", "Path to a file with style blocks to include verbatim")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	keys, err := resolveKeyMap(cmd)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".vtt"
	}

	stylePath, _ := cmd.Flags().GetString("style")
	style, err := loadStyle(stylePath)
	if err != nil {
		return err
	}

	logger.Infow("Converting captions",
		"input", inputPath,
		"output", outputPath,
		"timestamp_column", keys.Timestamp,
	)

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer input.Close()

	parser := csvparse.NewParser(keys)
	parser.SetStyle(style)
	if verbose {
		parser.OnCue = func(cue *webvtt.Cue) {
			logger.Debugw("Cue completed",
				"start", cue.StartTime,
				"end", cue.EndTime,
				"captions", len(cue.Captions),
			)
		}
	}

	doc, errs := parser.Parse(input)
	if doc == nil {
		for _, parseErr := range errs {
			fmt.Fprintln(os.Stderr, parseErr)
		}
		return fmt.Errorf("found %d problem(s) in %s", len(errs), inputPath)
	}

	if err := webvtt.WriteFile(doc, outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles converted successfully: %s\n", absOutput)
	fmt.Printf("  Cues: %d\n", len(doc.Cues))

	return nil
}

// resolveKeyMap builds the column mapping from the YAML file, then applies
// per-column flag overrides on top.
func resolveKeyMap(cmd *cobra.Command) (csvparse.KeyMap, error) {
	keys := csvparse.DefaultKeyMap()

	if columnsPath, _ := cmd.Flags().GetString("columns"); columnsPath != "" {
		loaded, err := csvparse.LoadKeyMap(columnsPath)
		if err != nil {
			return csvparse.KeyMap{}, err
		}
		keys = loaded
	}

	if name, _ := cmd.Flags().GetString("time-column"); name != "" {
		keys.Timestamp = name
	}
	if name, _ := cmd.Flags().GetString("speaker-column"); name != "" {
		keys.Speaker = name
	}
	if name, _ := cmd.Flags().GetString("text-column"); name != "" {
		keys.Content = name
	}
	if name, _ := cmd.Flags().GetString("style-column"); name != "" {
		keys.Style = name
	}

	return keys, nil
}

// loadStyle reads the style file and splits it into blank-line separated
// blocks, included verbatim between the WEBVTT header and the first cue.
func loadStyle(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	var blocks []string
	for _, block := range strings.Split(text, "\n\n") {
		if block = strings.TrimSpace(block); block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}
