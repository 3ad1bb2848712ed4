package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		path   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load enterprises, teachers and students from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open seed file: %w", err)
			}
			defer f.Close()

			file, err := parseSeedFile(f)
			if err != nil {
				return err
			}
			if dryRun {
				logrus.WithField("file", path).Info("Seed file is valid")
				return nil
			}

			db, err := a.openDB(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeDB(db)

			start := time.Now()
			result, err := applySeed(cmd.Context(), db, file)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), commandOutput{
				Command:    "seed",
				DurationMS: time.Since(start).Milliseconds(),
				Result:     result,
			})
		},
	}

	cmd.Flags().StringVar(&path, "file", "scripts/data/seed.yaml", "Seed file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without touching the database")
	return cmd
}
