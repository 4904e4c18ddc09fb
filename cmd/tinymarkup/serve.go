// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KenyStev/tinymarkup/web/handlers"
	"github.com/spf13/cobra"
)

func cmdServe() *cobra.Command {
	addr := ":8787"
	var tags []string
	var timeout time.Duration
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&addr, "addr", addr, "HTTP listen address")
		cmd.Flags().StringSliceVarP(&tags, "tag", "t", tags, "render tag as element (for example, b=strong)")
		cmd.Flags().DurationVar(&timeout, "timeout", timeout, "auto-shutdown after duration (e.g., 5s, 1m)")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "serve",
		Short:        "run the markup playground",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRenderer(cmd, tags)
			if err != nil {
				return err
			}
			h := handlers.New(r, newLogger(cmd))

			server := &http.Server{
				Addr:         addr,
				Handler:      h.Routes(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

			if timeout > 0 {
				go func() {
					log.Printf("server: will auto-shutdown in %v", timeout)
					time.Sleep(timeout)
					log.Printf("server: timeout reached, initiating shutdown")
					shutdown <- os.Interrupt
				}()
			}

			go func() {
				log.Printf("server: listening on %s", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("server: %v", err)
				}
			}()

			<-shutdown
			log.Printf("server: shutting down gracefully")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server: shutdown error: %w", err)
			}
			log.Printf("server: stopped")
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
