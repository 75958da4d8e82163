package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/model"
)

// roomTypeDef is one archetype of the fixed catalog. Amenities are
// stored as a JSON array in the amenities column.
type roomTypeDef struct {
	name        string
	slug        string
	maxGuests   uint8
	description string
	amenities   []string
}

var roomTypeCatalog = []roomTypeDef{
	{
		name:        "Standard",
		slug:        "standard",
		maxGuests:   2,
		description: "Comfortable room with basic amenities, perfect for budget travelers",
		amenities:   []string{"WiFi", "TV", "Air Conditioning", "Private Bathroom", "Toiletries"},
	},
	{
		name:        "Deluxe",
		slug:        "deluxe",
		maxGuests:   3,
		description: "Spacious room with enhanced comfort and premium amenities",
		amenities: []string{"WiFi", "Smart TV", "Air Conditioning", "Minibar", "Coffee Machine",
			"Bathrobe", "Slippers", "Premium Toiletries"},
	},
	{
		name:        "Suite",
		slug:        "suite",
		maxGuests:   4,
		description: "Luxurious suite with separate living area and premium services",
		amenities: []string{"WiFi", "Smart TV", "Air Conditioning", "Minibar", "Nespresso Machine",
			"Living Room", "Work Desk", "Bathrobe", "Slippers", "Premium Toiletries",
			"Room Service", "Daily Cleaning"},
	},
	{
		name:        "Penthouse",
		slug:        "penthouse",
		maxGuests:   6,
		description: "Top-floor luxury apartment with panoramic views and exclusive services",
		amenities: []string{"WiFi", "Smart TV", "Air Conditioning", "Full Kitchen", "Minibar",
			"Nespresso Machine", "Living Room", "Dining Area", "Multiple Bathrooms",
			"Jacuzzi", "Terrace", "Bathrobe", "Slippers", "Premium Toiletries",
			"Butler Service", "Private Check-in", "Complimentary Breakfast"},
	},
	{
		name:        "Family Room",
		slug:        "family",
		maxGuests:   5,
		description: "Large room designed for families with children",
		amenities: []string{"WiFi", "TV", "Air Conditioning", "Minibar", "Baby Cot Available",
			"Children Amenities", "Extra Beds", "Board Games"},
	},
	{
		name:        "Studio",
		slug:        "studio",
		maxGuests:   2,
		description: "Compact room with kitchenette, ideal for long stays",
		amenities: []string{"WiFi", "TV", "Air Conditioning", "Kitchenette", "Microwave",
			"Refrigerator", "Dining Table", "Work Desk"},
	},
}

// RoomTypesSeeder inserts the fixed six-archetype catalog.
type RoomTypesSeeder struct {
	db  *sql.DB
	Out io.Writer
}

func NewRoomTypesSeeder(db *sql.DB) *RoomTypesSeeder {
	return &RoomTypesSeeder{db: db, Out: os.Stdout}
}

func (s *RoomTypesSeeder) Key() string  { return "room-types" }
func (s *RoomTypesSeeder) Name() string { return "Room Types" }

func (s *RoomTypesSeeder) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Seeding room types...")
	start := time.Now()

	ins := NewBatchInserter(s.db, "room_types",
		[]string{"name", "slug", "max_guests", "description", "amenities"},
		len(roomTypeCatalog))

	for _, t := range roomTypeCatalog {
		amenities, err := json.Marshal(t.amenities)
		if err != nil {
			return fmt.Errorf("encode amenities for %s: %w", t.slug, err)
		}
		rt := model.RoomType{
			Name:        t.name,
			Slug:        t.slug,
			MaxGuests:   t.maxGuests,
			Description: t.description,
			Amenities:   string(amenities),
		}
		if err := ins.Add(ctx, rt.Name, rt.Slug, rt.MaxGuests, rt.Description, rt.Amenities); err != nil {
			return err
		}
	}
	if err := ins.Flush(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "  Inserted %d room types\n", ins.Total())
	fmt.Fprintf(s.Out, "Room types seeded successfully! (%s)\n",
		time.Since(start).Round(time.Millisecond))
	return nil
}
