package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/paycort/paycort-admin/config"
	"github.com/paycort/paycort-admin/internal/seed"
	"github.com/paycort/paycort-admin/internal/store"
	"github.com/paycort/paycort-admin/log"
	"github.com/spf13/cobra"
)

var (
	seedFile string

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Add signups from a JSON file to the waitlist, skipping known emails",
		RunE:  runSeed,
	}
)

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "JSON array of signups (firstName, lastName, phone, email)")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(cfg.Logger, os.Stdout))

	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	signups, err := seed.Load(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	defer db.Close()

	res, err := seed.Run(ctx, db.Waitlist(), signups)
	slog.Default().InfoContext(ctx, "waitlist seeded",
		slog.Int("added", res.Added),
		slog.Int("skipped", res.Skipped),
	)
	return err
}
