package model

// RecipientType is the kind of organization a recipient is.
type RecipientType string

// Recipient types.
const (
	RecipientNGO      RecipientType = "NGO"
	RecipientShelter  RecipientType = "Shelter"
	RecipientFoodBank RecipientType = "Food Bank"
)

// ValidRecipientType reports whether t is a known recipient type.
func ValidRecipientType(t RecipientType) bool {
	switch t {
	case RecipientNGO, RecipientShelter, RecipientFoodBank:
		return true
	}
	return false
}

// Recipient is an organization that can accept and use surplus food.
// Recipient records are reference data owned by the directory; they are
// immutable for the duration of a matching request.
type Recipient struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       RecipientType  `json:"type"`
	Needs      []FoodCategory `json:"needs"`
	CapacityKg float64        `json:"capacity_kg"`
	Location   string         `json:"location"`
}

// Accepts reports whether the recipient's needs include the given category.
func (r Recipient) Accepts(c FoodCategory) bool {
	for _, need := range r.Needs {
		if need == c {
			return true
		}
	}
	return false
}
