package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/seed"
)

var (
	listSeeders bool
	seedRandom  int64
)

var seedCmd = &cobra.Command{
	Use:   "seed [all|<seeder-key>]",
	Short: "Generate synthetic data through the ordered seeder pipeline",
	Long: `Runs the data generators in dependency order (countries, room-types,
users, hotels, rooms, bookings, reviews). With no argument or "all",
runs the whole chain and stops on the first failure; with a key, runs
one seeder. Seeders append rows and are not idempotent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&listSeeders, "list", false, "List available seeders and exit")
	seedCmd.Flags().Int64Var(&seedRandom, "seed", 0, "Random seed (0 picks a time-based one)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedRandom == 0 {
		seedRandom = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedRandom))

	if listSeeders {
		// Listing needs no database.
		registry := seed.NewRegistry(nil, rng)
		registry.List()
		fmt.Println("\nUsage:")
		fmt.Println("  hotelctl seed              - Run all seeders")
		fmt.Println("  hotelctl seed countries    - Run specific seeder")
		fmt.Println("  hotelctl seed --list       - Show this list")
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	registry := seed.NewRegistry(db, rng)
	ctx := context.Background()

	key := "all"
	if len(args) == 1 {
		key = args[0]
	}
	if key == "all" {
		return registry.RunAll(ctx)
	}

	seeder, ok := registry.Get(key)
	if !ok {
		registry.List()
		return fmt.Errorf("unknown seeder: %s", key)
	}

	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("RUNNING SEEDER: %s\n", seeder.Name())
	fmt.Println(strings.Repeat("=", 80))
	return seeder.Run(ctx)
}
