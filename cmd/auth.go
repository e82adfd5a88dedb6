package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/auth"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authName     string
	authPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := newProvider(st)
		if err != nil {
			return err
		}

		password, err := readPassword()
		if err != nil {
			return err
		}

		s, err := p.SignUp(ctx, authEmail, authName, password)
		if errors.Is(err, auth.ErrEmailTaken) {
			return fmt.Errorf("%s is already registered, use `stride login`", authEmail)
		}
		if err != nil {
			return fmt.Errorf("Failed to sign up: %w", err)
		}

		if err := saveSession(s); err != nil {
			return err
		}
		fmt.Printf("✅ Signed up and logged in as %s\n", s.User.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and keep the token for later commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := newProvider(st)
		if err != nil {
			return err
		}

		password, err := readPassword()
		if err != nil {
			return err
		}

		s, err := p.SignIn(ctx, authEmail, password)
		if err != nil {
			return fmt.Errorf("Failed to log in: %w", err)
		}

		if err := saveSession(s); err != nil {
			return err
		}
		fmt.Printf("✅ Logged in as %s (token valid until %s)\n", s.User.Email, s.ExpiresAt.In(cfg.Location()).Format("2006-01-02 15:04"))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := stateDir()
		if err != nil {
			return err
		}
		if err := dir.ClearCredentials(); err != nil {
			return fmt.Errorf("Failed to log out: %w", err)
		}
		fmt.Println("✅ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := st.GetUserByID(ctx, id.UserID)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("%s: %s\n", cyan("Email"), user.Email)
		if user.DisplayName != "" {
			fmt.Printf("%s: %s\n", cyan("Name"), user.DisplayName)
		}
		fmt.Printf("%s: %s\n", cyan("User ID"), user.ID)
		fmt.Printf("%s: %s\n", cyan("Token expires"), id.ExpiresAt.In(cfg.Location()).Format("2006-01-02 15:04"))
		return nil
	},
}

// readPassword takes --password when given, otherwise one line from stdin.
func readPassword() (string, error) {
	if authPassword != "" {
		return authPassword, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("Failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func saveSession(s *auth.Session) error {
	dir, err := stateDir()
	if err != nil {
		return err
	}
	return dir.SaveCredentials(&models.Credentials{
		UserID: s.User.ID,
		Email:  s.User.Email,
		Token:  s.Token,
		Issued: time.Now().UTC(),
	})
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, loginCmd} {
		c.Flags().StringVarP(&authEmail, "email", "e", "", "Account email")
		c.Flags().StringVarP(&authPassword, "password", "p", "", "Password (read from stdin when omitted)")
		c.MarkFlagRequired("email")
	}
	signupCmd.Flags().StringVarP(&authName, "name", "n", "", "Display name")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
