package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/migrate"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate [run|status|reset|fresh]",
	Short: "Apply, inspect or reset the versioned schema migrations",
	Long: `Manages the schema migration ledger:

  run     - Run pending migrations
  status  - Show migration status
  reset   - Drop all tables (asks for confirmation)
  fresh   - Reset database and run all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "Directory containing *.sql migration scripts")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	action := "run"
	if len(args) == 1 {
		action = args[0]
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runner := migrate.NewRunner(db, migrationsDir)
	ctx := context.Background()

	switch action {
	case "run":
		return runner.Run(ctx)
	case "status":
		return runner.Status(ctx)
	case "reset":
		return runner.Reset(ctx)
	case "fresh":
		return runner.Fresh(ctx)
	default:
		return fmt.Errorf("unknown command: %s (want run, status, reset or fresh)", action)
	}
}
