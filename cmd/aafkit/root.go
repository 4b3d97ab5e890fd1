package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return buildRootCommand(openContainerFile)
}

// buildRootCommand wires every subcommand to a context that opens AAF
// containers with open.
func buildRootCommand(open containerOpener) *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags, open)

	rootCmd := &cobra.Command{
		Use:           "aafkit",
		Short:         "Read AAF files and interpret their timelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
	pf.StringArrayVar(&flags.mediaLocations, "media-location", nil, "Directory searched for external essence (repeatable)")
	pf.BoolVar(&flags.trace, "trace", false, "Log every object the timeline walk visits")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "Only log warnings and errors")

	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newClassesCommand(ctx))
	rootCmd.AddCommand(newTimelineCommand(ctx))
	rootCmd.AddCommand(newEssencesCommand(ctx))
	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newIndexCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
