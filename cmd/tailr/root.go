package main

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "tailr [flags] FILE...",
		Short: "Print the last part of files",
		Long: `tailr prints the last 10 lines of each FILE.

A COUNT of "5" or "-5" selects the last 5 lines (or bytes), "+5" starts at
the 5th one, "+0" prints everything and "0" prints nothing.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(args, cmd.Flags().Changed("bytes"))
			if err != nil {
				return err
			}

			switch opts.prof {
			case "":
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			case "mem":
				defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			default:
				return fmt.Errorf("unknown profile: %s", opts.prof)
			}

			logger := log.New(io.Discard, "tailr: ", 0)
			if opts.verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}

			app := App{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: logger,
			}

			return app.Run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.lines, "lines", "n", defaultCount, "Number of lines")
	flags.StringVarP(&opts.bytes, "bytes", "c", "", "Number of bytes")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress headers")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log where output starts in each file")
	flags.StringVar(&opts.prof, "prof", "", "cpu|mem")
	_ = flags.MarkHidden("prof")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")

	return cmd
}
