package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"

	"github.com/kretatools/internal/config"
	"github.com/kretatools/internal/credentials"
	"github.com/kretatools/internal/keys"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: new(slog.LevelVar),
	}))

	if err := newRootCommand(logger).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "kretatools",
		Short:        "Personal automation around the Kréta school system",
		SilenceUsage: true,
	}
	root.AddCommand(
		newLoginCommand(logger),
		newAggregateCommand(logger),
		newCalendarCommand(logger),
		newUpdateCommand(logger),
		newMountCommand(logger),
		newUnmountCommand(logger),
	)
	return root
}

func openDatabase(cfg *config.Config) (*badger.DB, *keys.Key, error) {
	encryptionKey, err := keys.ParseKey([]byte(cfg.EncryptionKey))
	if err != nil {
		return nil, nil, fmt.Errorf("encryption key: %w", err)
	}
	db, err := badger.Open(badger.DefaultOptions(cfg.DatabasePath).WithLogger(nil))
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return db, encryptionKey, nil
}

// authenticate loads the stored credentials and puts them on the context
// for the Kréta client.
func authenticate(ctx context.Context, db *badger.DB, encryptionKey *keys.Key) (context.Context, error) {
	store := credentials.NewStore(db, encryptionKey)
	creds, err := store.Current(ctx)
	if errors.Is(err, credentials.ErrNotFound) {
		return ctx, fmt.Errorf("no stored credentials, run \"kretatools login\" first")
	} else if err != nil {
		return ctx, fmt.Errorf("load credentials: %w", err)
	}
	return credentials.NewContext(ctx, creds), nil
}
