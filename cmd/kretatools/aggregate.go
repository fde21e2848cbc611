package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/kretatools/internal/attendance"
	"github.com/kretatools/internal/config"
	"github.com/kretatools/internal/kreta"
)

func newAggregateCommand(logger *slog.Logger) *cobra.Command {
	var (
		year   int
		month  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Write a monthly lesson count report as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reject a bad month before the database or the network is touched.
			if month < 1 || month > 12 {
				return fmt.Errorf("%w: got %d", attendance.ErrInvalidMonth, month)
			}

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			db, encryptionKey, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, err := authenticate(cmd.Context(), db, encryptionKey)
			if err != nil {
				return err
			}

			client := kreta.NewClient(logger, cfg.BaseURL)
			service := attendance.NewService(logger, attendance.NewKretaSource(client))

			rows, err := service.Month(ctx, year, time.Month(month))
			if err != nil {
				return err
			}

			if err := attendance.WriteFile(output, rows); err != nil {
				return err
			}

			logger.Info("report written", "path", output, "rows", len(rows))

			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year of the report")
	cmd.Flags().IntVar(&month, "month", 0, "month of the report (1-12)")
	cmd.Flags().StringVar(&output, "output", "output.csv", "path to the output CSV file")
	cmd.MarkFlagRequired("year")
	cmd.MarkFlagRequired("month")

	return cmd
}
