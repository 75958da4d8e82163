package seed

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/model"
)

// Fixed country catalog. Codes are unique two-letter ISO codes.
var countries = []model.Country{
	{Code: "UA", Name: "Ukraine"},
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "FR", Name: "France"},
	{Code: "DE", Name: "Germany"},
	{Code: "IT", Name: "Italy"},
	{Code: "ES", Name: "Spain"},
	{Code: "PL", Name: "Poland"},
	{Code: "TR", Name: "Turkey"},
	{Code: "GR", Name: "Greece"},
	{Code: "PT", Name: "Portugal"},
	{Code: "NL", Name: "Netherlands"},
	{Code: "BE", Name: "Belgium"},
	{Code: "AT", Name: "Austria"},
	{Code: "CH", Name: "Switzerland"},
	{Code: "CZ", Name: "Czech Republic"},
	{Code: "HU", Name: "Hungary"},
	{Code: "RO", Name: "Romania"},
	{Code: "BG", Name: "Bulgaria"},
	{Code: "HR", Name: "Croatia"},
}

// cityRow references its country by code; the id is resolved after the
// countries are inserted.
type cityRow struct {
	countryCode string
	name        string
	population  uint32
	isPopular   bool
}

var cities = []cityRow{
	{"UA", "Kyiv", 2900000, true},
	{"UA", "Lviv", 720000, true},
	{"UA", "Odesa", 1015000, true},
	{"UA", "Kharkiv", 1430000, true},
	{"UA", "Dnipro", 980000, false},

	{"US", "New York", 8336000, true},
	{"US", "Los Angeles", 3980000, true},
	{"US", "Miami", 470000, true},
	{"US", "Las Vegas", 641000, true},
	{"US", "San Francisco", 873000, true},

	{"FR", "Paris", 2165000, true},
	{"FR", "Nice", 340000, true},
	{"FR", "Lyon", 516000, true},
	{"FR", "Marseille", 870000, false},

	{"IT", "Rome", 2873000, true},
	{"IT", "Venice", 260000, true},
	{"IT", "Milan", 1352000, true},
	{"IT", "Florence", 383000, true},

	{"ES", "Barcelona", 1620000, true},
	{"ES", "Madrid", 3223000, true},
	{"ES", "Valencia", 792000, false},
	{"ES", "Seville", 688000, false},

	{"DE", "Berlin", 3645000, true},
	{"DE", "Munich", 1472000, true},
	{"DE", "Hamburg", 1841000, false},

	{"GB", "London", 8982000, true},
	{"GB", "Manchester", 547000, false},
	{"GB", "Edinburgh", 488000, true},

	{"PL", "Warsaw", 1794000, true},
	{"PL", "Krakow", 779000, true},

	{"TR", "Istanbul", 15460000, true},
	{"TR", "Antalya", 1300000, true},

	{"GR", "Athens", 664000, true},
	{"GR", "Santorini", 15000, true},

	{"PT", "Lisbon", 505000, true},
	{"PT", "Porto", 237000, true},
}

// GeographySeeder inserts the fixed country list, then the cities,
// resolving each city's country id with a fresh read after the country
// insert. That read-after-write lookup is the pattern every later
// seeder follows for its foreign keys.
type GeographySeeder struct {
	db  *sql.DB
	Out io.Writer
}

// NewGeographySeeder constructs the seeder with stdout reporting.
func NewGeographySeeder(db *sql.DB) *GeographySeeder {
	return &GeographySeeder{db: db, Out: os.Stdout}
}

func (s *GeographySeeder) Key() string  { return "countries" }
func (s *GeographySeeder) Name() string { return "Countries & Cities" }

// Run inserts countries and cities.
func (s *GeographySeeder) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Seeding countries and cities...")
	start := time.Now()

	if err := s.seedCountries(ctx); err != nil {
		return err
	}
	if err := s.seedCities(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "Countries and cities seeded successfully! (%s)\n",
		time.Since(start).Round(time.Millisecond))
	return nil
}

func (s *GeographySeeder) seedCountries(ctx context.Context) error {
	ins := NewBatchInserter(s.db, "countries", []string{"code", "name"}, len(countries))
	for _, c := range countries {
		if err := ins.Add(ctx, c.Code, c.Name); err != nil {
			return err
		}
	}
	if err := ins.Flush(ctx); err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "  Inserted %d countries\n", ins.Total())
	return nil
}

func (s *GeographySeeder) seedCities(ctx context.Context) error {
	idByCode, err := s.countryIDs(ctx)
	if err != nil {
		return err
	}

	ins := NewBatchInserter(s.db, "cities",
		[]string{"country_id", "name", "population", "is_popular"}, len(cities))
	for _, c := range cities {
		countryID, ok := idByCode[c.countryCode]
		if !ok {
			continue
		}
		city := model.City{
			CountryID:  countryID,
			Name:       c.name,
			Population: c.population,
			IsPopular:  c.isPopular,
		}
		if err := ins.Add(ctx, city.CountryID, city.Name, city.Population, city.IsPopular); err != nil {
			return err
		}
	}
	if err := ins.Flush(ctx); err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "  Inserted %d cities\n", ins.Total())
	return nil
}

func (s *GeographySeeder) countryIDs(ctx context.Context) (map[string]uint64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, code FROM countries")
	if err != nil {
		return nil, fmt.Errorf("load country ids: %w", err)
	}
	defer rows.Close()

	idByCode := make(map[string]uint64, len(countries))
	for rows.Next() {
		var id uint64
		var code string
		if err := rows.Scan(&id, &code); err != nil {
			return nil, err
		}
		idByCode[code] = id
	}
	return idByCode, rows.Err()
}
