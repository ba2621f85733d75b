// Package user implements operational account provisioning. There is no HTTP
// registration endpoint; users are created out of band with this command.
package user

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"echoscribe/internal/app"
	"echoscribe/internal/config"
)

// Cmd represents the user command
var Cmd = &cobra.Command{
	Use:   "user",
	Short: "Manage service accounts",
}

var createCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a service account, reading the password from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := strings.TrimSpace(args[0])
		if username == "" {
			return fmt.Errorf("username must not be empty")
		}

		if err := config.LoadEnv(); err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		fmt.Fprint(os.Stderr, "Password: ")
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(password, "\r\n")
		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		authService, cleanup, err := app.InitializeAuthService(cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		created, err := authService.CreateUser(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("created user %q (id %d)\n", created.Username, created.ID)
		return nil
	},
}

func init() {
	Cmd.AddCommand(createCmd)
}
