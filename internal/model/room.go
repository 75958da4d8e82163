package model

// Room belongs to one hotel and one room type. RoomNumber is derived
// from the floor and the position within the floor and is unique inside
// a hotel (e.g. floor 3, position 7 -> "307").
type Room struct {
	ID          uint64  // rooms.id
	HotelID     uint64  // rooms.hotel_id
	RoomTypeID  uint64  // rooms.room_type_id
	RoomNumber  string  // rooms.room_number
	Floor       uint16  // rooms.floor
	BasePrice   float64 // rooms.base_price (per night)
	Area        uint16  // rooms.area (square meters)
	BedsCount   uint8   // rooms.beds_count
	HasBalcony  bool    // rooms.has_balcony
	ViewType    string  // rooms.view_type (city|sea|mountain|garden|courtyard)
	IsAvailable bool    // rooms.is_available
}
