package seed

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

func TestNewUser(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	validGenders := map[string]bool{"male": true, "female": true, "other": true}

	sawNilGender := false
	for seq := 1; seq <= 2000; seq++ {
		u := newUser(rng, seq, "hash", now)

		if want := fmt.Sprintf("user%d@example.com", seq); u.Email != want {
			t.Fatalf("email = %q, want %q", u.Email, want)
		}
		if u.PasswordHash != "hash" {
			t.Fatalf("password hash not carried through: %q", u.PasswordHash)
		}
		if u.Phone == "" || u.Phone[0] != '+' {
			t.Fatalf("phone = %q, want leading +", u.Phone)
		}

		dob, err := time.Parse("2006-01-02", u.DateOfBirth)
		if err != nil {
			t.Fatalf("date of birth %q: %v", u.DateOfBirth, err)
		}
		if dob.After(now.AddDate(-18, 0, 0)) || dob.Before(now.AddDate(-70, 0, -1)) {
			t.Fatalf("date of birth %s outside the 18-70 year window", u.DateOfBirth)
		}

		if u.Gender == nil {
			sawNilGender = true
		} else if !validGenders[*u.Gender] {
			t.Fatalf("gender = %q", *u.Gender)
		}
	}
	if !sawNilGender {
		t.Error("nullable gender never drawn over 2000 users")
	}
}
