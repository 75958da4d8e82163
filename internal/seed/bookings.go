package seed

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/model"
	"github.com/YuriyDyachuk/hotel-booking-system/internal/random"
)

// nightsTable biases stays towards 1-5 nights; two-week stays are rare.
var nightsTable = random.MustTable([]random.Choice[int]{
	{Value: 1, Weight: 10},
	{Value: 2, Weight: 25},
	{Value: 3, Weight: 25},
	{Value: 4, Weight: 15},
	{Value: 5, Weight: 10},
	{Value: 7, Weight: 8},
	{Value: 10, Weight: 5},
	{Value: 14, Weight: 2},
})

// Status outcome tables for the temporal assignment.
var (
	pastStatusTable = random.MustTable([]random.Choice[string]{
		{Value: model.BookingCompleted, Weight: 80},
		{Value: model.BookingCancelled, Weight: 15},
		{Value: model.BookingNoShow, Weight: 5},
	})
	futureStatusTable = random.MustTable([]random.Choice[string]{
		{Value: model.BookingConfirmed, Weight: 70},
		{Value: model.BookingPending, Weight: 25},
		{Value: model.BookingCancelled, Weight: 5},
	})
	futurePaymentTable = random.MustTable([]random.Choice[string]{
		{Value: model.PaymentPaid, Weight: 50},
		{Value: model.PaymentPartial, Weight: 30},
		{Value: model.PaymentUnpaid, Weight: 20},
	})
)

// seasonMultiplier prices peak months (summer and December) up and the
// off-season down.
func seasonMultiplier(month time.Month) float64 {
	switch month {
	case time.June, time.July, time.August, time.December:
		return 1.3
	case time.May, time.September, time.November:
		return 1.1
	default:
		return 0.9
	}
}

// bookingDates draws a check-in date with a three-way temporal split
// (30% prior year, 40% current year up to ~180 days ahead, 30% first
// half of next year) and a weighted nights count.
func bookingDates(rng *rand.Rand, now time.Time) (checkIn, checkOut time.Time, nights int) {
	var year, maxDay int
	switch n := randBetween(rng, 1, 100); {
	case n <= 30:
		year, maxDay = now.Year()-1, 365
	case n <= 70:
		// Jan 1 plus YearDay-1 is today, so this caps check-in at
		// today plus 180 days.
		year, maxDay = now.Year(), now.YearDay()+179
	default:
		year, maxDay = now.Year()+1, 180
	}

	day := randBetween(rng, 1, maxDay)
	checkIn = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	nights = nightsTable.Pick(rng)
	checkOut = checkIn.AddDate(0, 0, nights)
	return checkIn, checkOut, nights
}

// bookingPricing is the price breakdown of one booking. Components are
// rounded individually and the total is derived from the rounded parts,
// so total == base - discount + taxes holds at 2-decimal precision.
type bookingPricing struct {
	base     float64
	discount float64
	taxes    float64
	total    float64
}

// bookingPrice computes nightly price × nights × seasonal multiplier,
// applies a 5-25% discount with 10% probability, then a flat 10% tax on
// the post-discount amount.
func bookingPrice(rng *rand.Rand, nightly float64, nights int, checkIn time.Time) bookingPricing {
	base := round2(nightly * float64(nights) * seasonMultiplier(checkIn.Month()))

	discount := 0.0
	if chance(rng, 10) {
		discount = round2(base * float64(randBetween(rng, 5, 25)) / 100)
	}

	taxes := round2((base - discount) * 0.10)
	return bookingPricing{
		base:     base,
		discount: discount,
		taxes:    taxes,
		total:    round2(base - discount + taxes),
	}
}

// bookingStatus assigns (status, payment_status) from today's position
// relative to the stay:
//   - check-out in the past: weighted outcome, payment follows the
//     status deterministically;
//   - stay covers today: always confirmed and paid;
//   - check-in in the future: weighted status; cancelled bookings are
//     refunded, otherwise the payment state is drawn independently.
func bookingStatus(rng *rand.Rand, checkIn, checkOut, today time.Time) (status, payment string) {
	switch {
	case checkOut.Before(today):
		status = pastStatusTable.Pick(rng)
		switch status {
		case model.BookingCompleted:
			payment = model.PaymentPaid
		case model.BookingCancelled:
			payment = model.PaymentRefunded
		default: // no_show
			payment = model.PaymentUnpaid
		}
	case !checkIn.After(today) && !checkOut.Before(today):
		status = model.BookingConfirmed
		payment = model.PaymentPaid
	default:
		status = futureStatusTable.Pick(rng)
		if status == model.BookingCancelled {
			payment = model.PaymentRefunded
		} else {
			payment = futurePaymentTable.Pick(rng)
		}
	}
	return status, payment
}

// bookingNumber formats the monotonic sequence as a year-prefixed,
// fixed-width booking number.
func bookingNumber(year, seq int) string {
	return fmt.Sprintf("BK-%d-%08d", year, seq)
}

// BookingsSeeder generates the bulk of the dataset. Room prices and the
// user/room id lists are loaded once up front: at two million rows a
// query per booking would dominate the runtime.
type BookingsSeeder struct {
	db  *sql.DB
	rng *rand.Rand
	Out io.Writer

	Total     int
	BatchSize int
	Now       time.Time // date anchor for the temporal status machine
}

func NewBookingsSeeder(db *sql.DB, rng *rand.Rand) *BookingsSeeder {
	return &BookingsSeeder{
		db:        db,
		rng:       rng,
		Out:       os.Stdout,
		Total:     2000000,
		BatchSize: 1000,
		Now:       time.Now().UTC().Truncate(24 * time.Hour),
	}
}

func (s *BookingsSeeder) Key() string  { return "bookings" }
func (s *BookingsSeeder) Name() string { return "Bookings (2M)" }

func (s *BookingsSeeder) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Seeding bookings (this will take several minutes)...")
	start := time.Now()

	userIDs, err := s.loadIDs(ctx, "SELECT id FROM users")
	if err != nil {
		return fmt.Errorf("load user ids: %w", err)
	}
	roomIDs, prices, err := s.loadRoomPrices(ctx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 || len(roomIDs) == 0 {
		return fmt.Errorf("no users or rooms found, run previous seeders first: %w",
			ErrPrerequisiteMissing)
	}

	// Continue the sequence past any existing rows so a restarted load
	// cannot regenerate colliding booking numbers.
	seq, err := s.nextSequence(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "  Users available: %d\n", len(userIDs))
	fmt.Fprintf(s.Out, "  Rooms available: %d\n", len(roomIDs))
	fmt.Fprintf(s.Out, "  Target bookings: %d\n", s.Total)

	ins := NewBatchInserter(s.db, "bookings",
		[]string{"booking_number", "user_id", "room_id", "check_in", "check_out",
			"guests_count", "adults_count", "children_count",
			"base_price", "discount", "taxes", "total_price", "status", "payment_status"},
		s.BatchSize)
	ins.Progress = func(total int) {
		if total%10000 == 0 {
			fmt.Fprintf(s.Out, "\r  Progress: %d/%d bookings (%.1f%%)",
				total, s.Total, float64(total)/float64(s.Total)*100)
		}
	}

	year := s.Now.Year()
	for i := 0; i < s.Total; i++ {
		userID := userIDs[s.rng.Intn(len(userIDs))]
		roomIdx := s.rng.Intn(len(roomIDs))

		b := s.newBooking(userID, roomIDs[roomIdx], prices[roomIdx], bookingNumber(year, seq))
		seq++

		err := ins.Add(ctx, b.BookingNumber, b.UserID, b.RoomID,
			b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
			b.GuestsCount, b.AdultsCount, b.ChildrenCount,
			b.BasePrice, b.Discount, b.Taxes, b.TotalPrice,
			b.Status, b.PaymentStatus)
		if err != nil {
			return err
		}
	}
	if err := ins.Flush(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n  Inserted %d bookings\n", ins.Total())
	fmt.Fprintf(s.Out, "Bookings seeded successfully! (%s)\n",
		time.Since(start).Round(time.Millisecond))
	return nil
}

// newBooking generates one booking for the given user and room: dates,
// party size, pricing and the temporal status assignment.
func (s *BookingsSeeder) newBooking(userID, roomID uint64, nightly float64, number string) model.Booking {
	checkIn, checkOut, nights := bookingDates(s.rng, s.Now)
	adults := randBetween(s.rng, 1, 3)
	children := randBetween(s.rng, 0, 2)
	pricing := bookingPrice(s.rng, nightly, nights, checkIn)
	status, payment := bookingStatus(s.rng, checkIn, checkOut, s.Now)

	return model.Booking{
		BookingNumber: number,
		UserID:        userID,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestsCount:   uint8(adults + children),
		AdultsCount:   uint8(adults),
		ChildrenCount: uint8(children),
		BasePrice:     pricing.base,
		Discount:      pricing.discount,
		Taxes:         pricing.taxes,
		TotalPrice:    pricing.total,
		Status:        status,
		PaymentStatus: payment,
	}
}

func (s *BookingsSeeder) loadIDs(ctx context.Context, query string) ([]uint64, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// loadRoomPrices returns parallel slices of room ids and their nightly
// base prices.
func (s *BookingsSeeder) loadRoomPrices(ctx context.Context) ([]uint64, []float64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, base_price FROM rooms")
	if err != nil {
		return nil, nil, fmt.Errorf("load room prices: %w", err)
	}
	defer rows.Close()

	var ids []uint64
	var prices []float64
	for rows.Next() {
		var id uint64
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, nil, err
		}
		ids = append(ids, id)
		prices = append(prices, price)
	}
	return ids, prices, rows.Err()
}

func (s *BookingsSeeder) nextSequence(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookings").Scan(&count); err != nil {
		return 0, fmt.Errorf("count existing bookings: %w", err)
	}
	return count + 1, nil
}
