package model

// Hotel belongs to one city and owns rooms and reviews.
//
// Fields:
//  ID          – primary key identifier.
//  CityID      – city the hotel is located in.
//  Name        – generated hotel name.
//  Address     – street address.
//  Description – marketing description.
//  Stars       – official star class, 3–5.
//  Rating      – guest rating 1.0–5.0. Seeded from a per-star baseline,
//                later overwritten with the mean of visible reviews.
//  TotalRooms  – number of rooms the rooms seeder will create.
//  Email       – contact email derived from the name.
//  Phone       – contact phone.
//  Website     – contact website derived from the name.
type Hotel struct {
	ID          uint64  // hotels.id
	CityID      uint64  // hotels.city_id
	Name        string  // hotels.name
	Address     string  // hotels.address
	Description string  // hotels.description
	Stars       uint8   // hotels.stars
	Rating      float64 // hotels.rating
	TotalRooms  uint16  // hotels.total_rooms
	Email       string  // hotels.email
	Phone       string  // hotels.phone
	Website     string  // hotels.website
}
