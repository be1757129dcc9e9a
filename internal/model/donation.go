package model

import "time"

// FoodCategory classifies a donation item.
type FoodCategory string

// Food categories.
const (
	CategoryProduce  FoodCategory = "Produce"
	CategoryDairy    FoodCategory = "Dairy"
	CategoryBakery   FoodCategory = "Bakery"
	CategoryMeat     FoodCategory = "Meat"
	CategoryPrepared FoodCategory = "Prepared Meals"
	CategoryCanned   FoodCategory = "Canned Goods"
)

// Categories lists all known food categories in display order.
var Categories = []FoodCategory{
	CategoryProduce,
	CategoryDairy,
	CategoryBakery,
	CategoryMeat,
	CategoryPrepared,
	CategoryCanned,
}

// ValidCategory reports whether c is one of the known food categories.
func ValidCategory(c FoodCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DonationStatus is a donation's position in its lifecycle.
type DonationStatus string

// Donation statuses. The lifecycle is linear: Pending → Matched →
// In Transit → Delivered, one step at a time, never backwards.
const (
	StatusPending   DonationStatus = "Pending"
	StatusMatched   DonationStatus = "Matched"
	StatusInTransit DonationStatus = "In Transit"
	StatusDelivered DonationStatus = "Delivered"
)

// nextStatus maps each status to its single allowed successor.
var nextStatus = map[DonationStatus]DonationStatus{
	StatusPending:   StatusMatched,
	StatusMatched:   StatusInTransit,
	StatusInTransit: StatusDelivered,
}

// CanAdvance reports whether a donation may move from one status to another.
// Only the single forward step is allowed; Delivered is terminal.
func CanAdvance(from, to DonationStatus) bool {
	return nextStatus[from] == to
}

// DonationItem is a unit of surplus food offered by a donor.
// Quantity is strictly positive; status only ever advances forward.
type DonationItem struct {
	ID         string              `json:"id"`
	DonorID    string              `json:"donor_id"`
	Name       string              `json:"name"`
	QuantityKg float64             `json:"quantity_kg"`
	Category   FoodCategory        `json:"category"`
	ExpiryDate time.Time           `json:"expiry_date"`
	Status     DonationStatus      `json:"status"`
	Prediction *AIPredictionResult `json:"ai_prediction,omitempty"`
	PhotoMIME  string              `json:"photo_mime,omitempty"`
	Photo      []byte              `json:"-"`
	CreatedAt  time.Time           `json:"created_at"`
}
