package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ygo-tools/seccannon/pkg/seccannon"
	"github.com/ygo-tools/seccannon/pkg/seccannon/output"
)

var (
	outputPath   string
	markdownPath string
	verbose      bool
)

// NewRootCmd creates the root command for seccannon.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seccannon <xyz_min> <xyz_max> <fusion_min> <fusion_max>",
		Short: "Generate a Simultaneous Equation Cannon spreadsheet",
		Long: `seccannon finds every positive integer solution (fusion, xyz) of

    fusion + xyz     = stars
    fusion + 2*xyz   = nb_cards

within the given inclusive ranges and writes them to an Excel spreadsheet,
sorted and grouped by stars.`,
		Args: cobra.ExactArgs(4),
		RunE: run,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: results/ next to the binary)")
	cmd.Flags().StringVar(&markdownPath, "markdown", "", "Also write a markdown table to this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	bounds, err := parseBounds(args)
	if err != nil {
		return err
	}
	if err := bounds.Validate(); err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path, err = defaultOutputPath(bounds)
		if err != nil {
			return fmt.Errorf("failed to resolve output path: %w", err)
		}
	}

	solutions := seccannon.Solve(bounds)
	slog.Debug("enumerated solutions", "count", len(solutions), "output", path)

	if err := output.WriteXLSX(solutions, path); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", path)

	if markdownPath != "" {
		mdFile, err := os.Create(markdownPath)
		if err != nil {
			return fmt.Errorf("failed to create markdown file: %w", err)
		}
		if err := output.WriteMarkdown(solutions, mdFile); err != nil {
			mdFile.Close()
			return fmt.Errorf("failed to write markdown: %w", err)
		}
		if err := mdFile.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", markdownPath)
	}

	return nil
}

// parseBounds converts the four positional arguments, in command-line
// order (xyz_min, xyz_max, fusion_min, fusion_max), into Bounds.
func parseBounds(args []string) (seccannon.Bounds, error) {
	names := []string{"xyz_min", "xyz_max", "fusion_min", "fusion_max"}
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return seccannon.Bounds{}, fmt.Errorf("invalid %s %q: not an integer", names[i], arg)
		}
		values[i] = v
	}
	return seccannon.Bounds{
		XYZMin:    values[0],
		XYZMax:    values[1],
		FusionMin: values[2],
		FusionMax: values[3],
	}, nil
}

// defaultOutputPath places the workbook in a results directory next to
// the seccannon binary.
func defaultOutputPath(b seccannon.Bounds) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "results", outputFilename(b)), nil
}

// outputFilename encodes the ranges in the file name, xyz first to match
// the argument order.
func outputFilename(b seccannon.Bounds) string {
	return fmt.Sprintf("sec xyz%d-%d fusion%d-%d.xlsx", b.XYZMin, b.XYZMax, b.FusionMin, b.FusionMax)
}
