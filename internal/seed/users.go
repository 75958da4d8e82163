package seed

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/model"
	"github.com/YuriyDyachuk/hotel-booking-system/internal/utils"
)

var firstNames = []string{"John", "Jane", "Michael", "Emily", "David", "Sarah", "Robert", "Emma",
	"William", "Olivia", "James", "Ava", "Daniel", "Sophia", "Andrew"}

var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor"}

// genders includes the empty string for the nullable case.
var genders = []string{"male", "female", "other", ""}

// newUser generates the seq-th guest account. Emails are unique by
// construction: they embed the sequence number. Gender stays nil for
// the empty draw so the column is written as NULL.
func newUser(rng *rand.Rand, seq int, passwordHash string, now time.Time) model.User {
	u := model.User{
		Email:        fmt.Sprintf("user%d@example.com", seq),
		PasswordHash: passwordHash,
		FirstName:    firstNames[rng.Intn(len(firstNames))],
		LastName:     lastNames[rng.Intn(len(lastNames))],
		Phone: fmt.Sprintf("+%d%d", randBetween(rng, 1, 999),
			randBetween(rng, 1000000000, 9999999999)),
		DateOfBirth: now.AddDate(-randBetween(rng, 18, 70), 0, 0).Format("2006-01-02"),
	}
	if g := genders[rng.Intn(len(genders))]; g != "" {
		u.Gender = &g
	}
	return u
}

// UsersSeeder generates guest accounts in fixed-size batches up to the
// target total.
type UsersSeeder struct {
	db  *sql.DB
	rng *rand.Rand
	Out io.Writer

	Total      int
	BatchSize  int
	BcryptCost int
}

func NewUsersSeeder(db *sql.DB, rng *rand.Rand) *UsersSeeder {
	return &UsersSeeder{
		db:         db,
		rng:        rng,
		Out:        os.Stdout,
		Total:      100000,
		BatchSize:  1000,
		BcryptCost: bcrypt.MinCost,
	}
}

func (s *UsersSeeder) Key() string  { return "users" }
func (s *UsersSeeder) Name() string { return "Users (100K)" }

func (s *UsersSeeder) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Seeding users (this may take a while)...")
	start := time.Now()

	ins := NewBatchInserter(s.db, "users",
		[]string{"email", "password_hash", "first_name", "last_name", "phone", "date_of_birth", "gender"},
		s.BatchSize)
	ins.Progress = func(total int) {
		fmt.Fprintf(s.Out, "\r  Progress: %d/%d users (%.1f%%)",
			total, s.Total, float64(total)/float64(s.Total)*100)
	}

	now := time.Now()
	for seq := 1; seq <= s.Total; seq++ {
		hash, err := utils.HashPassword(fmt.Sprintf("password%d", seq), s.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for user %d: %w", seq, err)
		}
		u := newUser(s.rng, seq, hash, now)

		err = ins.Add(ctx, u.Email, u.PasswordHash, u.FirstName, u.LastName,
			u.Phone, u.DateOfBirth, u.Gender)
		if err != nil {
			return err
		}
	}
	if err := ins.Flush(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n  Inserted %d users\n", ins.Total())
	fmt.Fprintf(s.Out, "Users seeded successfully! (%s)\n",
		time.Since(start).Round(time.Millisecond))
	return nil
}
