package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pixelscale/internal/colorspace"
)

// NewSRGBCmd exposes the transfer function for quick lookups.
func NewSRGBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srgb",
		Short: "sRGB transfer function lookups",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "linear <byte>...",
			Short: "Gamma-encoded byte to linear value",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, a := range args {
					b, err := strconv.ParseUint(a, 10, 8)
					if err != nil {
						return fmt.Errorf("%q is not a byte: %w", a, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.7f\n", b, colorspace.EncodedToLinear(uint8(b)))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "encode <linear>...",
			Short: "Linear value to gamma-encoded byte",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, a := range args {
					v, err := strconv.ParseFloat(a, 32)
					if err != nil {
						return fmt.Errorf("%q is not a number: %w", a, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", a, colorspace.LinearToEncoded(float32(v)))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "table",
			Short: "Print all 256 byte to linear values",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				for i := 0; i < 256; i++ {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.7f\n", i, colorspace.EncodedToLinearLUT(uint8(i)))
				}
			},
		},
	)
	return cmd
}
