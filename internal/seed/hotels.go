package seed

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/model"
)

var hotelBrandWords = []string{
	"Grand", "Royal", "Imperial", "Continental", "Plaza", "Palace", "Ritz",
	"Hilton", "Marriott", "Hyatt", "Sheraton", "Renaissance", "Intercontinental",
	"Luxury", "Premium", "Elite", "Golden", "Silver", "Crystal", "Diamond",
	"Central", "Downtown", "Riverside", "Seaside", "Mountain View", "Park",
	"Boutique", "Comfort", "Business", "Airport", "City", "Metro",
}

var hotelTypeWords = []string{
	"Hotel", "Resort", "Inn", "Suites", "Lodge", "Residences", "Apartments",
}

var streetNames = []string{
	"Main Street", "Central Avenue", "Park Lane", "River Road", "Hill Street",
	"Broadway", "Market Street", "Station Road", "High Street", "Beach Boulevard",
}

var hotelDescriptionTemplates = []string{
	"Located in the heart of %[2]s, %[1]s offers luxurious accommodations with modern amenities.",
	"Experience exceptional hospitality at %[1]s, your perfect retreat in %[2]s, %[3]s.",
	"%[1]s combines comfort and elegance, providing guests with an unforgettable stay in %[2]s.",
	"Discover the perfect blend of luxury and convenience at %[1]s, situated in beautiful %[2]s.",
	"Welcome to %[1]s, where comfort meets style in the vibrant city of %[2]s.",
}

// hotelCity is a city joined with its country name, the shape the
// hotels seeder works from.
type hotelCity struct {
	model.City
	country string
}

// HotelsSeeder generates hotels in random existing cities. Star class
// is biased towards 4-5 in popular cities, and rating, room count and
// contact fields all derive from the star class and the generated name.
type HotelsSeeder struct {
	db  *sql.DB
	rng *rand.Rand
	Out io.Writer

	Total     int
	BatchSize int
}

func NewHotelsSeeder(db *sql.DB, rng *rand.Rand) *HotelsSeeder {
	return &HotelsSeeder{db: db, rng: rng, Out: os.Stdout, Total: 2000, BatchSize: 100}
}

func (s *HotelsSeeder) Key() string  { return "hotels" }
func (s *HotelsSeeder) Name() string { return "Hotels (2K)" }

func (s *HotelsSeeder) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Seeding hotels...")
	start := time.Now()

	cities, err := s.loadCities(ctx)
	if err != nil {
		return err
	}
	if len(cities) == 0 {
		return fmt.Errorf("no cities found, run the countries seeder first: %w", ErrPrerequisiteMissing)
	}

	ins := NewBatchInserter(s.db, "hotels",
		[]string{"city_id", "name", "address", "description", "stars", "rating",
			"total_rooms", "email", "phone", "website"},
		s.BatchSize)
	ins.Progress = func(total int) {
		fmt.Fprintf(s.Out, "\r  Progress: %d/%d hotels (%.1f%%)",
			total, s.Total, float64(total)/float64(s.Total)*100)
	}

	for i := 0; i < s.Total; i++ {
		city := cities[s.rng.Intn(len(cities))]
		h := s.newHotel(city)

		err := ins.Add(ctx, h.CityID, h.Name, h.Address, h.Description,
			h.Stars, h.Rating, h.TotalRooms, h.Email, h.Phone, h.Website)
		if err != nil {
			return err
		}
	}
	if err := ins.Flush(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n  Inserted %d hotels\n", ins.Total())
	fmt.Fprintf(s.Out, "Hotels seeded successfully! (%s)\n",
		time.Since(start).Round(time.Millisecond))
	return nil
}

// newHotel generates one hotel in the given city. Every derived field
// (star class, rating, room count, contacts) cascades from the city's
// popularity and the generated name.
func (s *HotelsSeeder) newHotel(city hotelCity) model.Hotel {
	name := s.hotelName(city.Name)
	stars := s.pickStars(city.IsPopular)
	email, phone, website := s.contacts(name)

	return model.Hotel{
		CityID: city.ID,
		Name:   name,
		Address: fmt.Sprintf("%d %s", randBetween(s.rng, 1, 500),
			streetNames[s.rng.Intn(len(streetNames))]),
		Description: fmt.Sprintf(
			hotelDescriptionTemplates[s.rng.Intn(len(hotelDescriptionTemplates))],
			name, city.Name, city.country),
		Stars:      uint8(stars),
		Rating:     s.seedRating(stars),
		TotalRooms: uint16(s.roomsCount(stars)),
		Email:      email,
		Phone:      phone,
		Website:    website,
	}
}

func (s *HotelsSeeder) loadCities(ctx context.Context) ([]hotelCity, error) {
	const q = `SELECT c.id, c.name, c.is_popular, co.name
	           FROM cities c
	           JOIN countries co ON c.country_id = co.id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}
	defer rows.Close()

	var result []hotelCity
	for rows.Next() {
		var c hotelCity
		if err := rows.Scan(&c.ID, &c.Name, &c.IsPopular, &c.country); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// hotelName combines a brand word, a type word and optionally the city
// name through one of four templates.
func (s *HotelsSeeder) hotelName(cityName string) string {
	brand := hotelBrandWords[s.rng.Intn(len(hotelBrandWords))]
	kind := hotelTypeWords[s.rng.Intn(len(hotelTypeWords))]

	switch s.rng.Intn(4) {
	case 0:
		return brand + " " + kind
	case 1:
		return cityName + " " + brand + " " + kind
	case 2:
		return brand + " " + cityName + " " + kind
	default:
		return "The " + brand + " " + kind
	}
}

// pickStars biases popular cities towards the 4-5 range: 70% of their
// hotels skip the 3-star class entirely.
func (s *HotelsSeeder) pickStars(popular bool) int {
	if popular && chance(s.rng, 70) {
		return randBetween(s.rng, 4, 5)
	}
	return randBetween(s.rng, 3, 5)
}

// seedRating produces the placeholder rating: a per-star baseline with
// ±0.25 jitter, clamped to [1,5]. The reviews seeder overwrites it with
// the real aggregate once reviews exist.
func (s *HotelsSeeder) seedRating(stars int) float64 {
	base := map[int]float64{3: 3.5, 4: 4.0, 5: 4.5}[stars]
	if base == 0 {
		base = 3.5
	}
	variation := float64(randBetween(s.rng, 0, 50)-25) / 100
	rating := base + variation
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return round2(rating)
}

func (s *HotelsSeeder) roomsCount(stars int) int {
	ranges := map[int][2]int{3: {20, 50}, 4: {40, 80}, 5: {50, 120}}
	rng, ok := ranges[stars]
	if !ok {
		rng = [2]int{20, 50}
	}
	return randBetween(s.rng, rng[0], rng[1])
}

// contacts derives email, phone and website deterministically from the
// hotel name.
func (s *HotelsSeeder) contacts(name string) (email, phone, website string) {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	email = slug + "@hotel.com"
	phone = fmt.Sprintf("+%d-%d-%d", randBetween(s.rng, 1, 999),
		randBetween(s.rng, 100, 999), randBetween(s.rng, 1000, 9999))
	website = "www." + slug + ".com"
	return email, phone, website
}
