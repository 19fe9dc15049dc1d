package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"pixelscale/internal/logging"
)

func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pixelscale",
		Short: "sRGB conversion and bicubic/bilinear image resampling",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile, _ := cmd.Flags().GetString("log-file")
			setupLogging(ctx, cmd, logFile)
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(
		NewVersionCmd(gitsha),
		NewResizeCmd(ctx),
		NewBatchCmd(ctx),
		NewSRGBCmd(),
		NewInspectCmd(),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.Bool("log-json", false, "Log as JSON instead of text")
	pf.String("log-file", "", "Write logs to a rotated file instead of stdout")
	return cmd
}

// setupLogging installs the default logger from the persistent log flags,
// writing to logFile when it is set.
func setupLogging(ctx context.Context, cmd *cobra.Command, logFile string) {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(logLevel)))
	if err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(logging.Logger(logging.Output(logFile), logJSON, level))
	if err != nil {
		slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", logLevel, "error", err)
	}
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(subCmd, indent+1)
	}
}

func NewVersionCmd(gitsha string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitsha)
		},
	}
}
