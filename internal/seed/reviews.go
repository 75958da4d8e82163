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

var reviewTitles = []string{
	"Excellent stay!",
	"Great experience",
	"Highly recommended",
	"Perfect location",
	"Amazing hotel",
	"Wonderful service",
	"Good value for money",
	"Nice and clean",
	"Disappointing",
	"Could be better",
	"Average experience",
	"Not worth the price",
	"Comfortable stay",
	"Beautiful rooms",
	"Friendly staff",
}

var positivePros = []string{
	"Excellent location in city center",
	"Very clean and comfortable rooms",
	"Friendly and helpful staff",
	"Great breakfast options",
	"Beautiful views",
	"Modern facilities",
	"Good value for money",
	"Quiet and peaceful",
	"Close to attractions",
	"Spacious rooms",
}

var negativeCons = []string{
	"Rooms could be cleaner",
	"Noise from the street",
	"WiFi connection issues",
	"Limited parking",
	"Breakfast not included",
	"Small bathroom",
	"Outdated furniture",
	"Poor soundproofing",
	"Slow check-in process",
	"Limited amenities",
}

var positiveComments = []string{
	"Had a wonderful stay at this hotel. Everything was perfect!",
	"Great location, clean rooms, and excellent service. Highly recommend!",
	"One of the best hotels I've stayed at. Will definitely come back.",
	"The staff was incredibly helpful and the room was spotless.",
	"Amazing experience from check-in to check-out. Thank you!",
}

var neutralComments = []string{
	"Decent hotel for the price. Nothing special but got the job done.",
	"Average experience. The room was okay, location was convenient.",
	"It was fine for a short stay. Some things could be improved.",
	"Good location but the room was smaller than expected.",
}

var negativeComments = []string{
	"Disappointed with the stay. Room was not clean and service was poor.",
	"Not worth the money. Expected much better for this price.",
	"Had several issues during our stay. Would not recommend.",
	"The pictures online were misleading. Room was outdated.",
}

// overallRatingTable skews reviews towards positive outcomes.
var overallRatingTable = random.MustTable([]random.Choice[int]{
	{Value: 1, Weight: 5},
	{Value: 2, Weight: 10},
	{Value: 3, Weight: 20},
	{Value: 4, Weight: 35},
	{Value: 5, Weight: 30},
})

// relatedRating perturbs the overall rating by -1/0/+1, clamped to
// [1,5]. Every sub-rating is drawn this way so they track the overall
// score without being identical.
func relatedRating(rng *rand.Rand, overall int) int {
	v := overall + randBetween(rng, -1, 1)
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// commentFor picks from the rating-tier pool: positive for >= 4,
// neutral for 3, negative below.
func commentFor(rng *rand.Rand, overall int) string {
	switch {
	case overall >= 4:
		return positiveComments[rng.Intn(len(positiveComments))]
	case overall == 3:
		return neutralComments[rng.Intn(len(neutralComments))]
	default:
		return negativeComments[rng.Intn(len(negativeComments))]
	}
}

// ReviewsSeeder materializes reviews for a fixed percentage of the
// completed bookings and then recomputes every reviewed hotel's rating
// as the mean of its visible reviews.
type ReviewsSeeder struct {
	db  *sql.DB
	rng *rand.Rand
	Out io.Writer

	BatchSize int
	// Probability is the percentage of completed bookings that get a
	// review.
	Probability int
}

func NewReviewsSeeder(db *sql.DB, rng *rand.Rand) *ReviewsSeeder {
	return &ReviewsSeeder{db: db, rng: rng, Out: os.Stdout, BatchSize: 1000, Probability: 30}
}

func (s *ReviewsSeeder) Key() string  { return "reviews" }
func (s *ReviewsSeeder) Name() string { return "Reviews" }

// completedBooking is the projection needed to attach a review.
type completedBooking struct {
	bookingID uint64
	userID    uint64
	hotelID   uint64
}

func (s *ReviewsSeeder) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Seeding reviews...")
	start := time.Now()

	fmt.Fprintln(s.Out, "  Fetching completed bookings...")
	completed, err := s.loadCompletedBookings(ctx)
	if err != nil {
		return err
	}
	if len(completed) == 0 {
		return fmt.Errorf("no completed bookings found: %w", ErrPrerequisiteMissing)
	}

	// Shuffle in memory instead of ORDER BY RAND(): same randomized
	// order, no server-side filesort over millions of rows.
	s.rng.Shuffle(len(completed), func(i, j int) {
		completed[i], completed[j] = completed[j], completed[i]
	})

	target := len(completed) * s.Probability / 100
	fmt.Fprintf(s.Out, "  Completed bookings: %d\n", len(completed))
	fmt.Fprintf(s.Out, "  Reviews to create: %d\n", target)

	ins := NewBatchInserter(s.db, "reviews",
		[]string{"hotel_id", "user_id", "booking_id", "overall_rating",
			"cleanliness_rating", "staff_rating", "location_rating",
			"value_rating", "comfort_rating",
			"title", "comment", "pros", "cons",
			"is_verified", "is_visible", "helpful_count"},
		s.BatchSize)
	ins.Progress = func(total int) {
		fmt.Fprintf(s.Out, "\r  Progress: %d/%d reviews (%.1f%%)",
			total, target, float64(total)/float64(target)*100)
	}

	for i := 0; i < target; i++ {
		r := s.newReview(completed[i])
		err := ins.Add(ctx, r.HotelID, r.UserID, r.BookingID, r.OverallRating,
			r.CleanlinessRating, r.StaffRating, r.LocationRating,
			r.ValueRating, r.ComfortRating,
			r.Title, r.Comment, r.Pros, r.Cons,
			r.IsVerified, r.IsVisible, r.HelpfulCount)
		if err != nil {
			return err
		}
	}
	if err := ins.Flush(ctx); err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "\n  Inserted %d reviews\n", ins.Total())

	if err := s.updateHotelRatings(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "Reviews seeded successfully! (%s)\n",
		time.Since(start).Round(time.Millisecond))
	return nil
}

// newReview generates a review for one completed booking. The overall
// rating drives everything: sub-ratings track it within one step, the
// comment tier follows it, pros attach only to positive reviews and
// cons only to neutral or negative ones.
func (s *ReviewsSeeder) newReview(b completedBooking) model.Review {
	overall := overallRatingTable.Pick(s.rng)

	r := model.Review{
		HotelID:           b.hotelID,
		UserID:            b.userID,
		BookingID:         b.bookingID,
		OverallRating:     uint8(overall),
		CleanlinessRating: uint8(relatedRating(s.rng, overall)),
		StaffRating:       uint8(relatedRating(s.rng, overall)),
		LocationRating:    uint8(relatedRating(s.rng, overall)),
		ValueRating:       uint8(relatedRating(s.rng, overall)),
		ComfortRating:     uint8(relatedRating(s.rng, overall)),
		Title:             reviewTitles[s.rng.Intn(len(reviewTitles))],
		Comment:           commentFor(s.rng, overall),
		IsVerified:        chance(s.rng, 90),
		IsVisible:         chance(s.rng, 80),
		HelpfulCount:      uint8(randBetween(s.rng, 0, 50)),
	}
	if overall >= 4 {
		pros := positivePros[s.rng.Intn(len(positivePros))]
		r.Pros = &pros
	}
	if overall <= 3 {
		cons := negativeCons[s.rng.Intn(len(negativeCons))]
		r.Cons = &cons
	}
	return r
}

func (s *ReviewsSeeder) loadCompletedBookings(ctx context.Context) ([]completedBooking, error) {
	const q = `SELECT b.id, b.user_id, r.hotel_id
	           FROM bookings b
	           JOIN rooms r ON b.room_id = r.id
	           WHERE b.status = 'completed'`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load completed bookings: %w", err)
	}
	defer rows.Close()

	var result []completedBooking
	for rows.Next() {
		var b completedBooking
		if err := rows.Scan(&b.bookingID, &b.userID, &b.hotelID); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// updateHotelRatings recomputes each reviewed hotel's rating as the
// mean overall rating of its visible reviews in one aggregate pass.
// Hotels without reviews keep their seeded placeholder.
func (s *ReviewsSeeder) updateHotelRatings(ctx context.Context) error {
	fmt.Fprintln(s.Out, "  Updating hotel ratings...")
	const q = `UPDATE hotels h
	           SET h.rating = (
	               SELECT AVG(r.overall_rating)
	               FROM reviews r
	               WHERE r.hotel_id = h.id AND r.is_visible = 1
	           )
	           WHERE EXISTS (
	               SELECT 1 FROM reviews r WHERE r.hotel_id = h.id AND r.is_visible = 1
	           )`
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("update hotel ratings: %w", err)
	}
	fmt.Fprintln(s.Out, "  Hotel ratings updated")
	return nil
}
