package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aslanbek/kazlearn/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the Kazakh Learn backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, _, err := buildClient(cfg, zap.NewNop())
		if err != nil {
			return err
		}

		username, _ := cmd.Flags().GetString("username")
		reader := bufio.NewReader(os.Stdin)
		if username == "" {
			fmt.Print("Username: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")

		tok, err := client.Login(cmd.Context(), username, password)
		if err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
				return fmt.Errorf("incorrect username or password")
			}
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", username, tok.UserRole)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "Account username")
}
