package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kretatools/internal/config"
	"github.com/kretatools/internal/mounts"
)

func newMountCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "mount",
		Short: "Mount the configured cloud remote",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			service := mounts.NewService(logger, nil, cfg.MountRemote, cfg.MountPoint)
			return service.Mount(cmd.Context())
		},
	}
}

func newUnmountCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "unmount",
		Short: "Unmount the configured cloud remote",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			service := mounts.NewService(logger, nil, cfg.MountRemote, cfg.MountPoint)
			return service.Unmount(cmd.Context())
		},
	}
}
