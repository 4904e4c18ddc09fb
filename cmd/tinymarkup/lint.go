// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KenyStev/tinymarkup"
	"github.com/KenyStev/tinymarkup/catalog"
	store "github.com/KenyStev/tinymarkup/stores/sqlite"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func cmdLint() *cobra.Command {
	jobs := 0
	normalize := false
	var dbPath string
	initDB, compactDB := false, false
	showTiming := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().IntVarP(&jobs, "jobs", "j", jobs, "number of messages to parse at once (0 means one per CPU)")
		cmd.Flags().BoolVar(&normalize, "normalize", normalize, "normalize messages to Unicode NFC before parsing")
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "record results in this SQLite database")
		cmd.Flags().BoolVar(&initDB, "init-db", initDB, "create the database before recording")
		cmd.Flags().BoolVar(&compactDB, "compact-db", compactDB, "compact the database after recording")
		cmd.Flags().BoolVar(&showTiming, "show-timing", showTiming, "show timing for each stage")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "lint <catalog>",
		Short:        "check that every message in a catalog parses",
		Long:         `Check that every message in a JSON, TOML or YAML catalog parses.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if (initDB || compactDB) && dbPath == "" {
				return fmt.Errorf("--init-db and --compact-db require --db")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if quiet {
				verbose = false
			}
			path := args[0]

			started := time.Now()
			cat, err := catalog.Load(afero.NewOsFs(), path, catalog.WithNormalize(normalize))
			if err != nil {
				return err
			}
			results, err := cat.Lint(ctx, jobs)
			if err != nil {
				return err
			}
			if showTiming {
				log.Printf("%s: linted %d messages in %v\n", path, len(results), time.Since(started))
			}

			failures := catalog.Failures(results)
			for _, r := range failures {
				if r.Diagnostic == nil {
					log.Printf("%s[%s]: %v\n", path, r.ID, r.Err)
					continue
				}
				tinymarkup.PrintDiagnostic(os.Stderr, *r.Diagnostic, fmt.Sprintf("%s[%s]", path, r.ID), []byte(r.Source))
			}

			if dbPath != "" {
				if initDB {
					if err := store.InitDatabase(dbPath); err != nil {
						return err
					}
					log.Printf("%s: created database\n", dbPath)
				}
				s, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: dbPath})
				if err != nil {
					return err
				}
				written, deleted, err := catalog.Record(ctx, s, cat.Name, results, time.Now().UTC())
				if err != nil {
					_ = s.Close()
					return err
				}
				if verbose {
					stats, err := s.Stats(ctx)
					if err == nil {
						log.Printf("%s: %d catalogs, %d messages, %d failures\n", dbPath, stats.Catalogs, stats.Messages, stats.Failures)
					}
				}
				if err := s.Close(); err != nil {
					return err
				}
				if !quiet {
					log.Printf("%s: %d written, %d deleted\n", dbPath, written, deleted)
				}
				if compactDB {
					if err := store.CompactDatabase(dbPath); err != nil {
						return err
					}
				}
			}

			if len(failures) != 0 {
				return fmt.Errorf("%s: %d of %d messages failed to parse", path, len(failures), len(results))
			}
			if !quiet {
				log.Printf("%s: %d messages ok\n", path, len(results))
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
