package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelscale/internal/imageio"
	"pixelscale/internal/raster"
)

// NewInspectCmd prints dimensions and alpha statistics of images.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <image>...",
		Short: "Show image dimensions and alpha coverage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				buf, err := imageio.Load(path, raster.BGRA)
				if err != nil {
					return err
				}
				s := alphaStats(buf)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, alpha: min=%d max=%d opaque=%d/%d (%.0f%%) transparent=%d\n",
					path, buf.Width, buf.Height, s.min, s.max, s.opaque, s.total,
					100*float64(s.opaque)/float64(s.total), s.transparent)
			}
			return nil
		},
	}
}

type stats struct {
	min, max            uint8
	opaque, transparent int
	total               int
}

func alphaStats(buf *raster.Buffer) stats {
	s := stats{min: 255}
	for y := 0; y < buf.Height; y++ {
		row := buf.Row(y)
		for i := 3; i < len(row); i += raster.BytesPerPixel {
			a := row[i]
			s.total++
			s.min = min(s.min, a)
			s.max = max(s.max, a)
			switch a {
			case 255:
				s.opaque++
			case 0:
				s.transparent++
			}
		}
	}
	return s
}
