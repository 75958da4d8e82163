package model

// Review is written by a user for a hotel after a completed booking.
// Sub-ratings stay within ±1 of the overall rating, clamped to [1,5].
// Pros are attached only to positive reviews (overall >= 4), cons only
// to neutral or negative ones (overall <= 3).
type Review struct {
	ID                uint64  // reviews.id
	HotelID           uint64  // reviews.hotel_id
	UserID            uint64  // reviews.user_id
	BookingID         uint64  // reviews.booking_id (status must be completed)
	OverallRating     uint8   // reviews.overall_rating
	CleanlinessRating uint8   // reviews.cleanliness_rating
	StaffRating       uint8   // reviews.staff_rating
	LocationRating    uint8   // reviews.location_rating
	ValueRating       uint8   // reviews.value_rating
	ComfortRating     uint8   // reviews.comfort_rating
	Title             string  // reviews.title
	Comment           string  // reviews.comment
	Pros              *string // reviews.pros (nullable)
	Cons              *string // reviews.cons (nullable)
	IsVerified        bool    // reviews.is_verified
	IsVisible         bool    // reviews.is_visible
	HelpfulCount      uint8   // reviews.helpful_count
}
