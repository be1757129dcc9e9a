package oracle

import "github.com/rescuelink/rescuelink/internal/model"

// requestEnvelope is the outbound oracle request shape.
type requestEnvelope struct {
	TaskRequest string    `json:"task_request"`
	InputData   inputData `json:"input_data"`
}

// inputData carries the task payload. Available items are always expressed
// as a list, even for a single donation, anticipating batch use.
type inputData struct {
	DonorID        string               `json:"donor_id"`
	Inventory      []inventoryItem      `json:"inventory,omitempty"`
	AvailableItems []model.DonationItem `json:"available_items,omitempty"`
	RecipientsPool []model.Recipient    `json:"recipients_pool,omitempty"`
	CurrentTime    string               `json:"current_time"`
}

// inventoryItem is one item submitted for surplus prediction.
type inventoryItem struct {
	ItemName   string             `json:"item_name"`
	Quantity   float64            `json:"quantity"`
	Unit       string             `json:"unit"`
	Category   model.FoodCategory `json:"category"`
	ExpiryDate string             `json:"expiry_date"`
}
