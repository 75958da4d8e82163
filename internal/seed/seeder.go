// Package seed generates referentially consistent synthetic data for
// the hotel-booking schema: countries and cities, room types, users,
// hotels, rooms, bookings and reviews. Seeders run in that fixed order
// because each one reads the ids its predecessors created.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"
)

// ErrPrerequisiteMissing is returned when a seeder finds the tables it
// depends on empty (e.g. seeding rooms before hotels). The seeder exits
// without writing anything.
var ErrPrerequisiteMissing = errors.New("prerequisite data missing")

// Seeder is one step of the generation pipeline.
type Seeder interface {
	// Key is the CLI identifier, e.g. "room-types".
	Key() string
	// Name is the human-readable description shown in listings.
	Name() string
	// Run generates and inserts this seeder's data.
	Run(ctx context.Context) error
}

// Registry holds the seeders in dependency order and runs them.
type Registry struct {
	seeders []Seeder
	out     io.Writer
}

// NewRegistry wires all seven seeders with their default volumes
// against the given handle and random source. The order is load-bearing:
// every seeder resolves foreign keys from the data of the ones before it.
func NewRegistry(db *sql.DB, rng *rand.Rand) *Registry {
	return &Registry{
		out: os.Stdout,
		seeders: []Seeder{
			NewGeographySeeder(db),
			NewRoomTypesSeeder(db),
			NewUsersSeeder(db, rng),
			NewHotelsSeeder(db, rng),
			NewRoomsSeeder(db, rng),
			NewBookingsSeeder(db, rng),
			NewReviewsSeeder(db, rng),
		},
	}
}

// Seeders returns the registered seeders in execution order.
func (r *Registry) Seeders() []Seeder { return r.seeders }

// Get finds a seeder by its CLI key.
func (r *Registry) Get(key string) (Seeder, bool) {
	for _, s := range r.seeders {
		if s.Key() == key {
			return s, true
		}
	}
	return nil, false
}

// List prints the available seeders with their keys.
func (r *Registry) List() {
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	fmt.Fprintln(r.out, "AVAILABLE SEEDERS")
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	for _, s := range r.seeders {
		fmt.Fprintf(r.out, "  %-20s - %s\n", s.Key(), s.Name())
	}
}

// RunAll executes every seeder in order and stops the chain on the
// first failure: continuing would only produce rows with dangling
// references. Returns the first error.
func (r *Registry) RunAll(ctx context.Context) error {
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	fmt.Fprintln(r.out, "RUNNING ALL SEEDERS")
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	start := time.Now()
	executed, failed := 0, 0
	var runErr error

	for _, s := range r.seeders {
		fmt.Fprintln(r.out, strings.Repeat("-", 80))
		fmt.Fprintf(r.out, "Running: %s\n", s.Name())
		fmt.Fprintln(r.out, strings.Repeat("-", 80))

		if err := s.Run(ctx); err != nil {
			failed++
			runErr = fmt.Errorf("seeder %s: %w", s.Key(), err)
			fmt.Fprintf(r.out, "Seeder failed: %v\nStopping due to error.\n", err)
			break
		}
		executed++
	}

	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	fmt.Fprintln(r.out, "SUMMARY")
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	fmt.Fprintf(r.out, "Executed: %d\n", executed)
	fmt.Fprintf(r.out, "Failed: %d\n", failed)
	fmt.Fprintf(r.out, "Total: %d\n", len(r.seeders))
	fmt.Fprintf(r.out, "Elapsed: %s\n", time.Since(start).Round(time.Millisecond))

	return runErr
}
