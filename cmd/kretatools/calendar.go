package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/kretatools/internal/calendars"
	"github.com/kretatools/internal/config"
	"github.com/kretatools/internal/kreta"
)

func newCalendarCommand(logger *slog.Logger) *cobra.Command {
	var (
		year   int
		month  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Export a month of lessons as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reject a bad month before the database or the network is touched.
			if month < 1 || month > 12 {
				return fmt.Errorf("%w: got %d", calendars.ErrInvalidMonth, month)
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

			service := calendars.NewService(logger, kreta.NewClient(logger, cfg.BaseURL))

			return service.ExportMonth(ctx, year, time.Month(month), output)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year of the calendar")
	cmd.Flags().IntVar(&month, "month", 0, "month of the calendar (1-12)")
	cmd.Flags().StringVar(&output, "output", "output.ics", "path to the output iCalendar file")
	cmd.MarkFlagRequired("year")
	cmd.MarkFlagRequired("month")

	return cmd
}
