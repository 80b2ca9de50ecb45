// Command taskadm creates a user account from the terminal, against whichever
// backend the server configuration points at. Handy for seeding a fresh
// deployment without going through the HTTP API.
//
// Usage:
//
//	taskadm -u alice [-f datadir | -d postgres-dsn]
//
// The password is prompted for with echo disabled.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/mkarpenko/taskdesk/internal/common"
	"github.com/mkarpenko/taskdesk/internal/flagx"
	"github.com/mkarpenko/taskdesk/internal/server/config"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/repomanager"
	"github.com/mkarpenko/taskdesk/internal/server/services"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()

	username := parseUsername()
	if username == "" {
		return fmt.Errorf("username is required (-u)")
	}

	m, err := newRepositoryManager(cfg)
	if err != nil {
		return fmt.Errorf("storage init error: %w", err)
	}
	defer m.Close()

	password, err := readPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := services.NewUserService(m, cfg).Signup(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("signup error: %w", err)
	}

	fmt.Printf("created user %s (%s)\n", user.Username, user.ID)
	return nil
}

// parseUsername parses only the -u flag; the rest of os.Args belongs to the
// shared server configuration.
func parseUsername() string {
	var username string

	args := flagx.FilterArgs(os.Args[1:], []string{"-u"})

	fs := flag.NewFlagSet("taskadm", flag.ContinueOnError)
	fs.StringVar(&username, "u", "", "username for the new account")
	_ = fs.Parse(args)

	return username
}

func readPassword() ([]byte, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("password read error: %w", err)
	}
	return password, nil
}

func newRepositoryManager(cfg *config.Config) (repomanager.RepositoryManager, error) {
	if cfg.DatabaseDSN != "" {
		return repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	}
	return repomanager.NewFileRepositoryManager(cfg.DataDir)
}
