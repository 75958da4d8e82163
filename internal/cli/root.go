// Package cli wires the migrate, seed and querytest commands. Commands
// resolve configuration, open the database handle and inject it into
// the core packages; nothing below this layer touches the environment.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/config"
	"github.com/YuriyDyachuk/hotel-booking-system/internal/database"
)

var rootCmd = &cobra.Command{
	Use:           "hotelctl [command]",
	Short:         "Hotel-booking schema migrator and synthetic data seeder",
	Long:          `Applies versioned SQL schema scripts exactly once each and generates large volumes of referentially consistent synthetic data (countries, cities, users, hotels, rooms, bookings, reviews).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits 1 on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB resolves the environment configuration and opens the pool.
// When DB_PASSWORD is unset and stdin is a terminal, the password is
// prompted for instead of failing outright.
func openDB() (*sql.DB, error) {
	cfg := config.Load()

	if cfg.DBPass == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Password for %s@%s: ", cfg.DBUser, cfg.DBHost)
		pass, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err == nil {
			cfg.DBPass = string(pass)
		}
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	fmt.Println("Database connection established")
	return db, nil
}
