// Command qtest drives a string queue with a simple command language,
// reading commands from a script or from standard input. Run it and
// type help for a list of commands.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"deedles.dev/strq/internal/console"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "qtest",
		Short:        "Exercise a string queue with a command script",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", "", "read commands from `path` instead of standard input")
	flags.StringP("verbose", "v", "info", "log `level`: debug, info, warn, or error")
	flags.Bool("echo", false, "echo each command before running it")
	flags.Int("bufsize", console.DefaultBufSize, "size of the buffer that rh removes into")

	v.SetEnvPrefix("qtest")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("verbose"))); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	in := cmd.InOrStdin()
	if path := v.GetString("file"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer file.Close()
		in = file
	}

	return runConsole(cmd.OutOrStdout(), in, logger, console.Config{
		BufSize: v.GetInt("bufsize"),
		Echo:    v.GetBool("echo"),
	})
}

func runConsole(out io.Writer, in io.Reader, logger *slog.Logger, conf console.Config) error {
	c := console.New(out, logger, conf)
	defer func() {
		c.Queue().Free()
	}()

	err := c.Run(in)
	if err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
