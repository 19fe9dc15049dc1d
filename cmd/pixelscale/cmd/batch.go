package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pixelscale/internal/batch"
	"pixelscale/internal/config"
	"pixelscale/internal/imageio"
)

// NewBatchCmd resizes every image under a directory.
func NewBatchCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Resize every image in a directory",
		Long:  "Scans a directory for images and writes one output per configured target, plus manifest.json.",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			var flags config.Flags
			flags.InputDir, _ = cmd.Flags().GetString("in")
			flags.OutputDir, _ = cmd.Flags().GetString("out")
			flags.Method, _ = cmd.Flags().GetString("method")
			flags.Format, _ = cmd.Flags().GetString("format")
			flags.Quality, _ = cmd.Flags().GetInt("quality")
			flags.Workers, _ = cmd.Flags().GetInt("workers")
			flags.Width, _ = cmd.Flags().GetInt("width")
			flags.Height, _ = cmd.Flags().GetInt("height")
			flags.Scale, _ = cmd.Flags().GetFloat64("scale")
			flags.Fit, _ = cmd.Flags().GetBool("fit")
			if flags.InputDir == "" && len(args) > 0 {
				flags.InputDir = args[0]
			}

			var cfg config.Config
			if configFile != "" {
				var err error
				if cfg, err = config.Load(configFile); err != nil {
					return err
				}
			}
			cfg.Resolve(flags)
			if cfg.LogFile != "" && !cmd.Flags().Changed("log-file") {
				setupLogging(ctx, cmd, cfg.LogFile)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			bc, err := batch.FromConfig(cfg)
			if err != nil {
				return err
			}

			files, err := imageio.Scan(cfg.InputDir)
			if err != nil {
				return fmt.Errorf("scan %s: %w", cfg.InputDir, err)
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No images to resize.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Images: %d, Targets: %d, Method: %s, Workers: %d\n",
				len(files), len(cfg.Targets), bc.Method, bc.Workers)
			fmt.Fprintf(out, "Output: %s\n", cfg.OutputDir)
			fmt.Fprintln(out, "------------------------------------------------------------")

			start := time.Now()
			results := batch.Run(cmd.Context(), bc, files)

			fmt.Fprintln(out, "------------------------------------------------------------")
			fmt.Fprintf(out, "Done in %.1fs\n", time.Since(start).Seconds())

			var failed []batch.Result
			for _, r := range results {
				if !r.Success {
					failed = append(failed, r)
				}
			}
			fmt.Fprintf(out, "Resized: %d/%d\n", len(results)-len(failed), len(results))
			if len(failed) > 0 {
				fmt.Fprintf(out, "\nFailed (%d):\n", len(failed))
				for _, r := range failed[:min(len(failed), 20)] {
					fmt.Fprintf(out, "  %s: %s\n", r.Source, r.Error)
				}
			}

			manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
			if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
				return err
			}
			m := batch.NewManifest(bc, results)
			if err := batch.WriteManifest(manifestPath, m); err != nil {
				slog.WarnContext(ctx, "manifest write failed", "path", manifestPath, "error", err)
			} else {
				fmt.Fprintf(out, "Manifest: %s (run %s)\n", manifestPath, m.RunID)
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d images failed", len(failed), len(results))
			}
			return nil
		},
	}

	pf := cmd.Flags()
	pf.StringP("config", "c", "", "Path to config.json")
	pf.StringP("in", "i", "", "Input directory")
	pf.StringP("out", "o", "", "Output directory (default: <in>-resized)")
	pf.StringP("method", "m", "", "Resampling method (bicubic|bilinear)")
	pf.StringP("format", "f", "", "Output format (webp|png|jpeg)")
	pf.Int("quality", 0, "JPEG quality 1-100 (default: 90)")
	pf.Int("workers", 0, "Files processed in parallel (default: NumCPU)")
	pf.IntP("width", "W", 0, "Single target width (overrides configured targets)")
	pf.IntP("height", "H", 0, "Single target height")
	pf.Float64P("scale", "s", 0, "Single target scale factor")
	pf.Bool("fit", false, "Treat width x height as a bounding box")
	return cmd
}
