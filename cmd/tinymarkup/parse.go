// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/KenyStev/tinymarkup"
	"github.com/KenyStev/tinymarkup/renderer"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
)

func cmdTokens() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "tokens <file|->",
		Short:        "print the tokens found in the input",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(args[0])
			if err != nil {
				return err
			}
			for _, tok := range tinymarkup.NewLexer(name, src, newLogger(cmd)).ScanAll() {
				fmt.Printf("%d:%d\t%-8s %q\n", tok.Line, tok.Column, tok.Kind, tok.Lexeme(src))
			}
			return nil
		},
	}
	return cmd
}

func cmdParse() *cobra.Command {
	format := "json"
	var outputFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&format, "format", "f", format, "output format (json or msgpack)")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save parse to file")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "parse <file|->",
		Short:        "parse the input and print the node tree",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "msgpack" {
				return fmt.Errorf("--format: want json or msgpack, got %q", format)
			}
			name, src, err := readInput(args[0])
			if err != nil {
				return err
			}

			nodes, err := tinymarkup.Build(tinymarkup.NewLexer(name, src, newLogger(cmd)).ScanAll())
			if err != nil {
				var mismatch *tinymarkup.StructuralMismatch
				if errors.As(err, &mismatch) {
					tinymarkup.PrintDiagnostic(os.Stderr, mismatch.Diagnostic(), name, src)
				}
				return fmt.Errorf("%s: %w", name, err)
			}

			var data []byte
			switch format {
			case "msgpack":
				data, err = msgpack.Marshal(tinymarkup.Wire(nodes))
			default:
				var buf bytes.Buffer
				enc := json.NewEncoder(&buf)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				err = enc.Encode(tinymarkup.Wire(nodes))
				data = buf.Bytes()
			}
			if err != nil {
				log.Fatalf("%s: %v\n", format, err)
			}
			return writeOutput(outputFile, data)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdRender() *cobra.Command {
	var tags []string
	var outputFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringSliceVarP(&tags, "tag", "t", tags, "render tag as element (for example, b=strong)")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save html to file")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "render <file|->",
		Short:        "render the input as html",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, src, err := readInput(args[0])
			if err != nil {
				return err
			}
			r, err := newRenderer(cmd, tags)
			if err != nil {
				return err
			}
			html, err := r.String(string(src))
			if err != nil {
				return err
			}
			return writeOutput(outputFile, []byte(html))
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// newRenderer returns a renderer that renames tags using "tag=element" pairs.
func newRenderer(cmd *cobra.Command, pairs []string) (*renderer.Renderer, error) {
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		tag, element, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("--tag: want tag=element, got %q", pair)
		}
		tags[tag] = element
	}
	return renderer.New(renderer.WithTags(tags), renderer.WithLogger(newLogger(cmd)))
}
