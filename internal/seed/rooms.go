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

var viewTypes = []string{"city", "sea", "mountain", "garden", "courtyard"}

// Archetype pricing and sizing, keyed by room type slug.
var (
	roomBasePrices = map[string]float64{
		"standard":  50,
		"deluxe":    100,
		"suite":     200,
		"penthouse": 500,
		"family":    120,
		"studio":    80,
	}
	roomAreas = map[string][2]int{
		"standard":  {18, 25},
		"deluxe":    {25, 35},
		"suite":     {40, 60},
		"penthouse": {80, 150},
		"family":    {35, 50},
		"studio":    {22, 30},
	}
)

// roomTypeWeights returns the sampling weights for a hotel of the given
// star class: cheap types dominate at low stars, premium types only
// carry real weight at high stars. Order is stable so draws are
// reproducible with a fixed seed.
func roomTypeWeights(stars int) []random.Choice[string] {
	standard := 30
	if stars <= 3 {
		standard = 60
	}
	suite := 10
	if stars >= 4 {
		suite = 20
	}
	penthouse := 2
	if stars == 5 {
		penthouse = 5
	}
	return []random.Choice[string]{
		{Value: "standard", Weight: standard},
		{Value: "deluxe", Weight: 25},
		{Value: "suite", Weight: suite},
		{Value: "penthouse", Weight: penthouse},
		{Value: "family", Weight: 10},
		{Value: "studio", Weight: 8},
	}
}

// roomNumberFor derives floor and room number from the 1-based room
// index: ten rooms per floor, the position cycling 1..10, zero-padded
// to two digits (floor 3, index 27 -> position 7 -> "307").
func roomNumberFor(index int) (floor int, number string) {
	floor = (index + 9) / 10
	pos := index % 10
	if pos == 0 {
		pos = 10
	}
	return floor, fmt.Sprintf("%d%02d", floor, pos)
}

// roomPrice computes the nightly base price: archetype base scaled by
// the star multiplier, plus 5 per floor above the first, perturbed by
// the given variation fraction (Run draws it in [-0.2, 0.2]).
func roomPrice(slug string, floor, stars int, variation float64) float64 {
	base, ok := roomBasePrices[slug]
	if !ok {
		base = 50
	}
	starMultiplier := 1 + float64(stars-3)*0.3
	floorBonus := float64(floor-1) * 5
	return round2((base*starMultiplier + floorBonus) * (1 + variation))
}

// RoomsSeeder generates exactly total_rooms rows for every hotel.
type RoomsSeeder struct {
	db  *sql.DB
	rng *rand.Rand
	Out io.Writer

	BatchSize int
}

func NewRoomsSeeder(db *sql.DB, rng *rand.Rand) *RoomsSeeder {
	return &RoomsSeeder{db: db, rng: rng, Out: os.Stdout, BatchSize: 500}
}

func (s *RoomsSeeder) Key() string  { return "rooms" }
func (s *RoomsSeeder) Name() string { return "Rooms (per hotel)" }

func (s *RoomsSeeder) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Seeding rooms...")
	start := time.Now()

	hotels, err := s.loadHotels(ctx)
	if err != nil {
		return err
	}
	typeIDs, err := s.loadRoomTypeIDs(ctx)
	if err != nil {
		return err
	}
	if len(hotels) == 0 || len(typeIDs) == 0 {
		return fmt.Errorf("hotels or room types not found, run previous seeders first: %w",
			ErrPrerequisiteMissing)
	}

	grandTotal := 0
	for _, h := range hotels {
		grandTotal += int(h.TotalRooms)
	}
	fmt.Fprintf(s.Out, "  Total rooms to insert: %d\n", grandTotal)

	ins := NewBatchInserter(s.db, "rooms",
		[]string{"hotel_id", "room_type_id", "room_number", "floor", "base_price",
			"area", "beds_count", "has_balcony", "view_type", "is_available"},
		s.BatchSize)
	ins.Progress = func(total int) {
		fmt.Fprintf(s.Out, "\r  Progress: %d/%d rooms (%.1f%%)",
			total, grandTotal, float64(total)/float64(grandTotal)*100)
	}

	for _, hotel := range hotels {
		table, err := random.NewTable(roomTypeWeights(int(hotel.Stars)))
		if err != nil {
			return err
		}
		for n := 1; n <= int(hotel.TotalRooms); n++ {
			slug := table.Pick(s.rng)
			typeID, ok := typeIDs[slug]
			if !ok {
				return fmt.Errorf("room type %q missing from room_types table", slug)
			}

			room := s.newRoom(hotel, typeID, slug, n)
			err := ins.Add(ctx, room.HotelID, room.RoomTypeID, room.RoomNumber,
				room.Floor, room.BasePrice, room.Area, room.BedsCount,
				room.HasBalcony, room.ViewType, room.IsAvailable)
			if err != nil {
				return err
			}
		}
	}
	if err := ins.Flush(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n  Inserted %d rooms\n", ins.Total())
	fmt.Fprintf(s.Out, "Rooms seeded successfully! (%s)\n",
		time.Since(start).Round(time.Millisecond))
	return nil
}

// newRoom generates the n-th room (1-based) of the hotel: number and
// floor derive from n, price from the archetype, floor and star class.
func (s *RoomsSeeder) newRoom(hotel model.Hotel, typeID uint64, slug string, n int) model.Room {
	floor, number := roomNumberFor(n)
	variation := float64(randBetween(s.rng, -20, 20)) / 100

	return model.Room{
		HotelID:     hotel.ID,
		RoomTypeID:  typeID,
		RoomNumber:  number,
		Floor:       uint16(floor),
		BasePrice:   roomPrice(slug, floor, int(hotel.Stars), variation),
		Area:        uint16(s.areaFor(slug)),
		BedsCount:   uint8(s.bedsFor(slug)),
		HasBalcony:  floor > 1 && chance(s.rng, 40),
		ViewType:    viewTypes[s.rng.Intn(len(viewTypes))],
		IsAvailable: true,
	}
}

func (s *RoomsSeeder) loadHotels(ctx context.Context) ([]model.Hotel, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, total_rooms, stars FROM hotels ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("load hotels: %w", err)
	}
	defer rows.Close()

	var result []model.Hotel
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.TotalRooms, &h.Stars); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

func (s *RoomsSeeder) loadRoomTypeIDs(ctx context.Context) (map[string]uint64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, slug FROM room_types")
	if err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]uint64)
	for rows.Next() {
		var id uint64
		var slug string
		if err := rows.Scan(&id, &slug); err != nil {
			return nil, err
		}
		ids[slug] = id
	}
	return ids, rows.Err()
}

func (s *RoomsSeeder) areaFor(slug string) int {
	rng, ok := roomAreas[slug]
	if !ok {
		rng = [2]int{18, 25}
	}
	return randBetween(s.rng, rng[0], rng[1])
}

func (s *RoomsSeeder) bedsFor(slug string) int {
	switch slug {
	case "deluxe":
		return randBetween(s.rng, 1, 2)
	case "suite":
		return 2
	case "penthouse", "family":
		return randBetween(s.rng, 2, 3)
	default: // standard, studio
		return 1
	}
}
