package model

import "time"

// Booking statuses. Status and PaymentStatus only ever appear in the
// combinations produced by the temporal assignment in the bookings
// seeder: past stays are completed/cancelled/no-show, a stay covering
// today is always confirmed and paid, future stays may still be pending.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
	BookingNoShow    = "no_show"

	PaymentUnpaid   = "unpaid"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Booking records a user's stay in a room.
//
// Fields:
//  ID            – primary key identifier.
//  BookingNumber – unique formatted number, e.g. BK-2026-00000042.
//  UserID        – user who booked.
//  RoomID        – room being booked.
//  CheckIn       – arrival date.
//  CheckOut      – departure date, strictly after CheckIn.
//  GuestsCount   – AdultsCount + ChildrenCount.
//  AdultsCount   – adults staying.
//  ChildrenCount – children staying.
//  BasePrice     – nightly price × nights × seasonal multiplier.
//  Discount      – absolute discount amount (0 for most bookings).
//  Taxes         – 10% of (BasePrice − Discount).
//  TotalPrice    – BasePrice − Discount + Taxes.
//  Status        – booking lifecycle state.
//  PaymentStatus – payment lifecycle state.
type Booking struct {
	ID            uint64    // bookings.id
	BookingNumber string    // bookings.booking_number
	UserID        uint64    // bookings.user_id
	RoomID        uint64    // bookings.room_id
	CheckIn       time.Time // bookings.check_in
	CheckOut      time.Time // bookings.check_out
	GuestsCount   uint8     // bookings.guests_count
	AdultsCount   uint8     // bookings.adults_count
	ChildrenCount uint8     // bookings.children_count
	BasePrice     float64   // bookings.base_price
	Discount      float64   // bookings.discount
	Taxes         float64   // bookings.taxes
	TotalPrice    float64   // bookings.total_price
	Status        string    // bookings.status
	PaymentStatus string    // bookings.payment_status
}
