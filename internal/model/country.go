package model

// Country is a top-level geography record. Cities reference it by id.
//
// Fields:
//  ID   – primary key identifier.
//  Code – unique two-letter ISO code.
//  Name – display name.
type Country struct {
	ID   uint64 // countries.id
	Code string // countries.code
	Name string // countries.name
}

// City belongs to exactly one country. IsPopular biases hotel star
// assignment towards 4–5 stars during seeding.
type City struct {
	ID         uint64 // cities.id
	CountryID  uint64 // cities.country_id
	Name       string // cities.name
	Population uint32 // cities.population
	IsPopular  bool   // cities.is_popular
}
