package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pixelscale/internal/batch"
	"pixelscale/internal/config"
	"pixelscale/internal/imageio"
	"pixelscale/internal/postprocess"
	"pixelscale/internal/raster"
	"pixelscale/internal/resample"
)

// NewResizeCmd resizes a single image file.
func NewResizeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Resize one image",
		Long:  "Decodes an image, resamples it with the bicubic or bilinear filter and encodes the result (format from the output extension).",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			methodName, _ := cmd.Flags().GetString("method")
			premultiply, _ := cmd.Flags().GetBool("premultiply")
			trim, _ := cmd.Flags().GetBool("trim")
			quality, _ := cmd.Flags().GetInt("quality")
			rowWorkers, _ := cmd.Flags().GetInt("row-workers")

			var t config.Target
			t.Width, _ = cmd.Flags().GetInt("width")
			t.Height, _ = cmd.Flags().GetInt("height")
			t.Scale, _ = cmd.Flags().GetFloat64("scale")
			t.Fit, _ = cmd.Flags().GetBool("fit")
			t.Pad, _ = cmd.Flags().GetBool("pad")

			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" || out == "" {
				return errors.New("--in and --out are required")
			}
			method, err := resample.ParseMethod(methodName)
			if err != nil {
				return err
			}

			src, err := imageio.Load(in, raster.BGRA)
			if err != nil {
				return err
			}
			if trim {
				if src, err = postprocess.CropTransparent(src); err != nil {
					return err
				}
			}

			bc := batch.Config{Method: method, Premultiply: premultiply, RowWorkers: rowWorkers}
			dst, err := bc.Resize(cmd.Context(), src, t)
			if err != nil {
				return err
			}

			if err := imageio.Save(out, dst, imageio.Options{Quality: quality}); err != nil {
				return err
			}
			slog.InfoContext(ctx, "resized", "in", in, "out", out, "method", method,
				"from", fmt.Sprintf("%dx%d", src.Width, src.Height),
				"to", fmt.Sprintf("%dx%d", dst.Width, dst.Height))
			return nil
		},
	}

	pf := cmd.Flags()
	pf.StringP("in", "i", "", "Input image path")
	pf.StringP("out", "o", "", "Output image path (.webp, .png, .jpg)")
	pf.IntP("width", "W", 0, "Destination width")
	pf.IntP("height", "H", 0, "Destination height")
	pf.Float64P("scale", "s", 0, "Uniform scale factor (instead of width/height)")
	pf.Bool("fit", false, "Treat width x height as a bounding box and keep the aspect ratio")
	pf.Bool("pad", false, "With --fit, center on a transparent canvas of exactly width x height")
	pf.StringP("method", "m", resample.Bicubic.String(), "Resampling method (bicubic|bilinear)")
	pf.Bool("premultiply", false, "Resample in premultiplied-alpha space")
	pf.Bool("trim", false, "Crop fully transparent borders before resizing")
	pf.Int("quality", 90, "JPEG quality 1-100")
	pf.Int("row-workers", 1, "Goroutines resampling row chunks")
	return cmd
}
