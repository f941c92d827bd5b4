package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rackplan/internal/sample"
	"github.com/matzehuels/rackplan/pkg/layout"
	"github.com/matzehuels/rackplan/pkg/render"
)

// generateCommand creates the generate command for computing layouts.
func (c *CLI) generateCommand() *cobra.Command {
	var params generateParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute a layout and write it as JSON",
		Long: `Compute a layout and write it as JSON.

The generate command validates the panel placements, derives the rafter
grid, places mounts, and detects joints. The result is written to
layout_<timestamp>.json in the output directory.

Without --panels the built-in sample dataset is used. Pass --plot to also
render the layout; the optional value controls where the image goes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params.plot = cmd.Flags().Changed("plot")
			return c.runGenerate(cmd.Context(), params)
		},
	}

	cmd.Flags().StringVarP(&params.configPath, "config", "c", "", "settings file (YAML or TOML)")
	cmd.Flags().StringVarP(&params.panelsPath, "panels", "p", "", "JSON file with panel placements (default: built-in sample)")
	cmd.Flags().StringVarP(&params.outputDir, "output-dir", "o", "output", "directory for layout JSON files")
	cmd.Flags().StringVar(&params.plotPath, "plot", "", "render a plot (optional path; default: next to the JSON file)")

	return cmd
}

// generateParams collects the generate command's flag values.
type generateParams struct {
	configPath string
	panelsPath string
	outputDir  string
	plotPath   string
	plot       bool
}

// runGenerate computes the layout and writes the JSON and optional plot.
func (c *CLI) runGenerate(ctx context.Context, params generateParams) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig(params.configPath)
	if err != nil {
		return err
	}

	specs := sample.Panels()
	if params.panelsPath != "" {
		specs, err = loadPanelsFile(params.panelsPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded panels", "path", params.panelsPath, "count", len(specs))
	}

	calc, err := layout.NewCalculator(cfg)
	if err != nil {
		return err
	}
	layoutCtx, err := calc.CalculateDetailed(specs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(params.outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", params.outputDir, err)
	}

	timestamp := time.Now().Format(timestampFormat)
	jsonPath := filepath.Join(params.outputDir, "layout_"+timestamp+".json")
	data, err := json.MarshalIndent(layoutCtx.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write layout %s: %w", jsonPath, err)
	}

	prog.done(fmt.Sprintf("Computed layout for %d panels", len(layoutCtx.Panels)))

	printSuccess("Layout written")
	printStats(len(layoutCtx.Panels), layoutCtx.Result.MountCount(), layoutCtx.Result.JointCount())
	printFile(jsonPath)

	if params.plot {
		plotPath, err := resolvePlotPath(jsonPath, params.plotPath, timestamp)
		if err != nil {
			return fmt.Errorf("resolve plot path: %w", err)
		}
		if err := render.WritePlot(layoutCtx, plotPath); err != nil {
			return err
		}
		printFile(plotPath)
	}

	printNextStep("Serve the engine over HTTP", "rackplan serve")
	return nil
}
