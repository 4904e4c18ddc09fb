// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Command tinymarkup tokenizes, parses, renders and lints tinymarkup text.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/KenyStev/tinymarkup"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("no-color", false, "never color diagnostics")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "tinymarkup",
		Short: "tinymarkup command line utility",
		Long:  `Tokenize, parse, render and lint text written in tinymarkup`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			// diagnostics are written to stderr, so color follows stderr rather than stdout
			noColor, _ := cmd.Flags().GetBool("no-color")
			color.NoColor = noColor || !term.IsTerminal(int(os.Stderr.Fd()))

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("tinymarkup: version %q\n", tinymarkup.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdTokens())
	cmdRoot.AddCommand(cmdParse())
	cmdRoot.AddCommand(cmdRender())
	cmdRoot.AddCommand(cmdLint())
	cmdRoot.AddCommand(cmdServe())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns the slog logger for the persistent log level flags.
// With --debug, the lexer logs every token.
func newLogger(cmd *cobra.Command) *slog.Logger {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	} else if verbose && !quiet {
		level = slog.LevelInfo
	} else if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// readInput reads the named file, or stdin when name is "-".
// It returns the name to use in diagnostics along with the contents.
func readInput(name string) (string, []byte, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		return "<stdin>", data, err
	}
	data, err := os.ReadFile(name)
	return name, data, err
}

// writeOutput writes data to the named file, or to stdout when name is empty.
func writeOutput(name string, data []byte) error {
	if name == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	log.Printf("%s: wrote %d bytes\n", name, len(data))
	return nil
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(tinymarkup.Version().String())
				return nil
			}
			fmt.Println(tinymarkup.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
