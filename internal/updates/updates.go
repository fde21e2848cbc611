package updates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

var ErrNotADirectory = errors.New("not a directory")

type Status string

const (
	StatusUpdated  Status = "updated"
	StatusUpToDate Status = "up to date"
	StatusFailed   Status = "failed"
	StatusSkipped  Status = "skipped"
)

// Result is the outcome of checking one subdirectory of the base directory.
type Result struct {
	Name   string
	Status Status
	Output string
	Err    error
}

// Runner executes a command inside dir and returns its combined output.
type Runner func(ctx context.Context, dir, name string, args ...string) (string, error)

func ExecRunner(ctx context.Context, dir, name string, args ...string) (string, error) {
	command := exec.CommandContext(ctx, name, args...)
	command.Dir = dir
	output, err := command.CombinedOutput()
	return string(output), err
}

type Checker struct {
	logger *slog.Logger
	run    Runner
	limit  int
}

func NewChecker(logger *slog.Logger, run Runner) *Checker {
	if run == nil {
		run = ExecRunner
	}
	return &Checker{
		logger: logger,
		run:    run,
		limit:  4,
	}
}

// Check pulls every git repository directly under baseDir. Pulls run
// concurrently, results keep directory order.
func (c *Checker) Check(ctx context.Context, baseDir string) ([]Result, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("base directory %q: %w", baseDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base directory %q: %w", baseDir, ErrNotADirectory)
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("read base directory %q: %w", baseDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	results := make([]Result, len(names))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.limit)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			results[i] = c.checkRepository(ctx, filepath.Join(baseDir, name), name)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (c *Checker) checkRepository(ctx context.Context, dir, name string) Result {
	if info, err := os.Stat(filepath.Join(dir, ".git")); err != nil || !info.IsDir() {
		c.logger.Info("skipping non-git directory", "name", name)
		return Result{Name: name, Status: StatusSkipped}
	}

	output, err := c.run(ctx, dir, "git", "pull")
	if err != nil {
		c.logger.Error("pull failed", "name", name, "error", err)
		return Result{Name: name, Status: StatusFailed, Output: strings.TrimSpace(output), Err: err}
	}
	if strings.Contains(output, "Already up to date.") {
		return Result{Name: name, Status: StatusUpToDate}
	}

	c.logger.Info("updates pulled", "name", name)
	return Result{Name: name, Status: StatusUpdated, Output: strings.TrimSpace(output)}
}

// Install builds and installs every updated repository, one at a time since
// package builds are heavy and may prompt for privileges.
func (c *Checker) Install(ctx context.Context, baseDir string, results []Result) []Result {
	for i := range results {
		if results[i].Status != StatusUpdated {
			continue
		}
		dir := filepath.Join(baseDir, results[i].Name)
		output, err := c.run(ctx, dir, "makepkg", "-si", "--noconfirm")
		if err != nil {
			c.logger.Error("build failed", "name", results[i].Name, "error", err)
			results[i].Status = StatusFailed
			results[i].Output = strings.TrimSpace(output)
			results[i].Err = err
			continue
		}
		c.logger.Info("package installed", "name", results[i].Name)
	}
	return results
}
