package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/kretatools/internal/config"
	"github.com/kretatools/internal/credentials"
)

func newLoginCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store the Kréta session token and teacher id",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			token, teacherID, err := promptCredentials(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !isDigits(teacherID) {
				logger.Warn("teacher id does not look numeric", "teacher_id", teacherID)
			}

			db, encryptionKey, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			store := credentials.NewStore(db, encryptionKey)
			creds := &credentials.Credentials{
				ID:        credentials.NewID(),
				TeacherID: teacherID,
				Token:     token,
			}

			ctx := cmd.Context()
			if err := store.Insert(ctx, creds); err != nil {
				return fmt.Errorf("store credentials: %w", err)
			}
			if err := store.SetCurrent(ctx, creds.ID); err != nil {
				return fmt.Errorf("mark credentials current: %w", err)
			}

			logger.Info("credentials stored", "id", creds.ID)

			return nil
		},
	}
}

// promptCredentials walks the user through lifting the session cookie and
// teacher id out of the browser's developer tools.
func promptCredentials(in io.Reader, out io.Writer) (token, teacherID string, err error) {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "Please follow these steps in your web browser:")
	fmt.Fprintln(out, "1. Log in to 'Kréta'.")
	fmt.Fprintln(out, "2. Press 'Ctrl+Shift+I'.")
	fmt.Fprintln(out, "3. Go to the 'Haladási Napló'.")
	fmt.Fprintln(out, "4. Go to the 'Storage'/'Application' tab.")
	fmt.Fprintln(out, "5. In the left sidebar, expand 'Cookies'.")
	fmt.Fprintln(out, "6. Find the 'Kréta' domain (https://*.e-kreta.hu).")
	fmt.Fprintln(out, "7. Look for the cookie named 'kreta.application'.")
	fmt.Fprintln(out, "8. Copy the 'Value' field of this cookie.")

	token, err = promptLine(reader, out)
	if err != nil {
		return "", "", err
	}
	if token == "" {
		return "", "", fmt.Errorf("token cannot be empty")
	}

	fmt.Fprintln(out, "9. Go to the 'Debugger' tab.")
	fmt.Fprintln(out, "10. In the left sidebar, expand 'Orarend'.")
	fmt.Fprintln(out, "11. Click on 'TanariOrarend'.")
	fmt.Fprintln(out, "12. Press 'Ctrl+F' and search for 'tanarId: setCalendarTanarId'.")
	fmt.Fprintln(out, "13. Copy the parameter of the function.")

	teacherID, err = promptLine(reader, out)
	if err != nil {
		return "", "", err
	}
	if teacherID == "" {
		return "", "", fmt.Errorf("teacher id cannot be empty")
	}

	return token, teacherID, nil
}

func promptLine(reader *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the copied value: ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isDigits(value string) bool {
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
