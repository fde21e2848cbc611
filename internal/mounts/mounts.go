package mounts

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

var (
	ErrNoRemote       = errors.New("no remote configured")
	ErrNoMountPoint   = errors.New("mount point does not exist")
	ErrAlreadyMounted = errors.New("already mounted")
)

// Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

func ExecRunner(ctx context.Context, name string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return string(output), err
}

// Service wraps the rclone mount / fusermount pair for one configured
// cloud remote.
type Service struct {
	logger     *slog.Logger
	run        Runner
	remote     string
	mountPoint string
}

func NewService(logger *slog.Logger, run Runner, remote, mountPoint string) *Service {
	if run == nil {
		run = ExecRunner
	}
	return &Service{
		logger:     logger,
		run:        run,
		remote:     remote,
		mountPoint: mountPoint,
	}
}

func (s *Service) Mount(ctx context.Context) error {
	if s.remote == "" {
		return ErrNoRemote
	}
	info, err := os.Stat(s.mountPoint)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNoMountPoint, s.mountPoint)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", ErrNoMountPoint, s.mountPoint)
	}
	if mounted, err := s.mounted(); err == nil && mounted {
		return fmt.Errorf("%w: %q", ErrAlreadyMounted, s.mountPoint)
	}

	output, err := s.run(ctx, "rclone",
		"mount", s.remote, s.mountPoint,
		"--daemon",
		"--vfs-cache-mode", "writes")
	if err != nil {
		return fmt.Errorf("rclone mount: %w: %s", err, strings.TrimSpace(output))
	}

	s.logger.Info("mounted", "remote", s.remote, "mount_point", s.mountPoint)

	return nil
}

func (s *Service) Unmount(ctx context.Context) error {
	output, err := s.run(ctx, "fusermount", "-uz", s.mountPoint)
	if err != nil {
		return fmt.Errorf("fusermount: %w: %s", err, strings.TrimSpace(output))
	}

	s.logger.Info("unmounted", "mount_point", s.mountPoint)

	return nil
}

func (s *Service) mounted() (bool, error) {
	file, err := os.Open("/proc/mounts")
	if err != nil {
		return false, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[1] == s.mountPoint {
			return true, nil
		}
	}
	return false, scanner.Err()
}
