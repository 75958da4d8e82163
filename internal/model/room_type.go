package model

// RoomType is one of the six fixed room archetypes. Amenities holds a
// JSON-encoded string list as stored in the amenities column.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name (e.g. "Deluxe").
//  Slug        – unique machine key (e.g. "deluxe").
//  MaxGuests   – maximum occupancy for the type.
//  Description – marketing description.
//  Amenities   – JSON array of amenity names.
type RoomType struct {
	ID          uint64 // room_types.id
	Name        string // room_types.name
	Slug        string // room_types.slug
	MaxGuests   uint8  // room_types.max_guests
	Description string // room_types.description
	Amenities   string // room_types.amenities (JSON)
}
