package seed

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/model"
)

func testHotelsSeeder(seed int64) *HotelsSeeder {
	return NewHotelsSeeder(nil, rand.New(rand.NewSource(seed)))
}

func TestPickStars(t *testing.T) {
	s := testHotelsSeeder(51)

	sawFourPlus := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if v := s.pickStars(false); v < 3 || v > 5 {
			t.Fatalf("pickStars(false) = %d, outside [3,5]", v)
		}
		v := s.pickStars(true)
		if v < 3 || v > 5 {
			t.Fatalf("pickStars(true) = %d, outside [3,5]", v)
		}
		if v >= 4 {
			sawFourPlus++
		}
	}

	// Popular cities: 70% of draws are forced into 4-5, the rest pick
	// uniformly from 3-5 (adding ~2/3 of 30%). Expect ~90% overall.
	share := float64(sawFourPlus) / draws
	if share < 0.85 || share > 0.95 {
		t.Errorf("popular 4-5 star share = %.3f, want ~0.90", share)
	}
}

func TestSeedRatingBounds(t *testing.T) {
	s := testHotelsSeeder(52)

	baselines := map[int]float64{3: 3.5, 4: 4.0, 5: 4.5}
	for stars, base := range baselines {
		for i := 0; i < 2000; i++ {
			r := s.seedRating(stars)
			if r < base-0.25-0.001 || r > base+0.25+0.001 {
				t.Fatalf("seedRating(%d) = %v, outside %v±0.25", stars, r, base)
			}
		}
	}
}

func TestRoomsCount(t *testing.T) {
	s := testHotelsSeeder(53)

	ranges := map[int][2]int{3: {20, 50}, 4: {40, 80}, 5: {50, 120}}
	for stars, want := range ranges {
		for i := 0; i < 1000; i++ {
			n := s.roomsCount(stars)
			if n < want[0] || n > want[1] {
				t.Fatalf("roomsCount(%d) = %d, outside [%d,%d]", stars, n, want[0], want[1])
			}
		}
	}
}

func TestContacts(t *testing.T) {
	s := testHotelsSeeder(54)

	email, phone, website := s.contacts("Grand Plaza Hotel")
	if email != "grandplazahotel@hotel.com" {
		t.Errorf("email = %q", email)
	}
	if website != "www.grandplazahotel.com" {
		t.Errorf("website = %q", website)
	}
	if !strings.HasPrefix(phone, "+") || strings.Count(phone, "-") != 2 {
		t.Errorf("phone = %q, want +CC-NNN-NNNN shape", phone)
	}
}

func TestNewHotel(t *testing.T) {
	s := testHotelsSeeder(56)
	city := hotelCity{
		City:    model.City{ID: 5, Name: "Kyiv", IsPopular: true},
		country: "Ukraine",
	}
	roomRanges := map[uint8][2]uint16{3: {20, 50}, 4: {40, 80}, 5: {50, 120}}
	baselines := map[uint8]float64{3: 3.5, 4: 4.0, 5: 4.5}

	for i := 0; i < 1000; i++ {
		h := s.newHotel(city)

		if h.CityID != 5 {
			t.Fatalf("city id = %d, want 5", h.CityID)
		}
		if h.Stars < 3 || h.Stars > 5 {
			t.Fatalf("stars = %d", h.Stars)
		}
		base := baselines[h.Stars]
		if h.Rating < base-0.26 || h.Rating > base+0.26 {
			t.Fatalf("rating %v outside %v±0.25 for %d stars", h.Rating, base, h.Stars)
		}
		want := roomRanges[h.Stars]
		if h.TotalRooms < want[0] || h.TotalRooms > want[1] {
			t.Fatalf("total rooms %d outside [%d,%d] for %d stars",
				h.TotalRooms, want[0], want[1], h.Stars)
		}
		if !strings.Contains(h.Description, "Kyiv") {
			t.Fatalf("description %q does not mention the city", h.Description)
		}
		slug := strings.ToLower(strings.ReplaceAll(h.Name, " ", ""))
		if h.Email != slug+"@hotel.com" || h.Website != "www."+slug+".com" {
			t.Fatalf("contacts %q/%q not derived from name %q", h.Email, h.Website, h.Name)
		}
	}
}

func TestHotelName(t *testing.T) {
	s := testHotelsSeeder(55)

	inPool := func(pool []string, word string) bool {
		for _, p := range pool {
			if p == word {
				return true
			}
		}
		return false
	}

	for i := 0; i < 500; i++ {
		name := s.hotelName("Kyiv")
		if name == "" {
			t.Fatal("empty hotel name")
		}
		words := strings.Fields(name)
		if !inPool(hotelTypeWords, words[len(words)-1]) {
			t.Fatalf("hotel name %q does not end with a type word", name)
		}
	}
}
