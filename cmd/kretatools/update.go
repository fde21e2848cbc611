package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kretatools/internal/config"
	"github.com/kretatools/internal/notifications"
	"github.com/kretatools/internal/updates"
)

func newUpdateCommand(logger *slog.Logger) *cobra.Command {
	var (
		baseDir string
		install bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Pull every git repository under a base directory",
		Long: `Pull every git repository under a base directory (e.g. checked out
AUR packages), optionally build and install the ones that changed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			if baseDir == "" {
				baseDir = cfg.UpdatesDir
			}
			if baseDir == "" {
				return fmt.Errorf("no base directory, pass --base-directory or set KRETATOOLS_UPDATES_DIR")
			}

			checker := updates.NewChecker(logger, nil)

			ctx := cmd.Context()
			results, err := checker.Check(ctx, baseDir)
			if err != nil {
				return err
			}
			if install {
				results = checker.Install(ctx, baseDir, results)
			}

			for _, result := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", result.Name, result.Status)
				if result.Err != nil && result.Output != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), result.Output)
				}
			}

			if cfg.TelegramConfigured() {
				if message := summarize(results); message != "" {
					notifier, err := notifications.NewService(logger, cfg.TelegramToken, cfg.TelegramChatID)
					if err != nil {
						logger.Error("telegram", "error", err)
					} else if err := notifier.Notify(ctx, message); err != nil {
						logger.Error("notify", "error", err)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-directory", "", "directory containing the git repositories to check")
	cmd.Flags().BoolVar(&install, "install", false, "build and install updated repositories with makepkg")

	return cmd
}

// summarize renders results worth pushing to Telegram, empty when nothing
// changed and nothing failed.
func summarize(results []updates.Result) string {
	var lines []string
	for _, result := range results {
		switch result.Status {
		case updates.StatusUpdated, updates.StatusFailed:
			lines = append(lines, fmt.Sprintf("%s: %s", result.Name, result.Status))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}
