package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rescuelink/rescuelink/internal/model"
)

// CreateRecipient adds a recipient organization to the directory.
func CreateRecipient(ctx context.Context, db *sql.DB, r model.Recipient) (*model.Recipient, error) {
	needs, err := json.Marshal(r.Needs)
	if err != nil {
		return nil, fmt.Errorf("encoding needs: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO recipients (id, name, type, needs, capacity_kg, location)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Type, string(needs), r.CapacityKg, r.Location,
	)
	if err != nil {
		return nil, fmt.Errorf("creating recipient: %w", err)
	}

	return GetRecipient(ctx, db, r.ID)
}

// GetRecipient returns a recipient by ID, or nil if not found.
func GetRecipient(ctx context.Context, db *sql.DB, id string) (*model.Recipient, error) {
	r := &model.Recipient{}
	var needs string
	err := db.QueryRowContext(ctx,
		`SELECT id, name, type, needs, capacity_kg, location FROM recipients WHERE id = ?`, id,
	).Scan(&r.ID, &r.Name, &r.Type, &needs, &r.CapacityKg, &r.Location)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting recipient: %w", err)
	}
	if err := json.Unmarshal([]byte(needs), &r.Needs); err != nil {
		return nil, fmt.Errorf("decoding needs for recipient %s: %w", id, err)
	}
	return r, nil
}

// ListRecipients returns the full candidate pool in stable insertion order.
// The matching mock depends on this order being reproducible.
func ListRecipients(ctx context.Context, db *sql.DB) ([]model.Recipient, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, type, needs, capacity_kg, location
		 FROM recipients ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recipients: %w", err)
	}
	defer rows.Close()

	var recipients []model.Recipient
	for rows.Next() {
		var r model.Recipient
		var needs string
		if err := rows.Scan(&r.ID, &r.Name, &r.Type, &needs, &r.CapacityKg, &r.Location); err != nil {
			return nil, fmt.Errorf("scanning recipient: %w", err)
		}
		if err := json.Unmarshal([]byte(needs), &r.Needs); err != nil {
			return nil, fmt.Errorf("decoding needs for recipient %s: %w", r.ID, err)
		}
		recipients = append(recipients, r)
	}
	return recipients, rows.Err()
}

// seedRecipients is the demo directory: the external recipient service is
// mocked as this static pool.
var seedRecipients = []model.Recipient{
	{
		ID:         "rec_1",
		Name:       "Downtown Shelter",
		Type:       model.RecipientShelter,
		Needs:      []model.FoodCategory{model.CategoryPrepared, model.CategoryBakery},
		CapacityKg: 50,
		Location:   "34.05,-118.24",
	},
	{
		ID:         "rec_2",
		Name:       "Community Food Bank",
		Type:       model.RecipientFoodBank,
		Needs:      []model.FoodCategory{model.CategoryProduce, model.CategoryCanned, model.CategoryMeat},
		CapacityKg: 500,
		Location:   "34.06,-118.25",
	},
	{
		ID:         "rec_3",
		Name:       "Hope Kitchen",
		Type:       model.RecipientNGO,
		Needs:      []model.FoodCategory{model.CategoryDairy, model.CategoryProduce},
		CapacityKg: 100,
		Location:   "34.04,-118.23",
	},
}

// SeedRecipients inserts the demo recipient pool. Safe to call repeatedly;
// existing rows are left untouched.
func SeedRecipients(ctx context.Context, db *sql.DB) error {
	for _, r := range seedRecipients {
		needs, err := json.Marshal(r.Needs)
		if err != nil {
			return fmt.Errorf("encoding needs: %w", err)
		}
		_, err = db.ExecContext(ctx,
			`INSERT OR IGNORE INTO recipients (id, name, type, needs, capacity_kg, location)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, r.Type, string(needs), r.CapacityKg, r.Location,
		)
		if err != nil {
			return fmt.Errorf("seeding recipient %s: %w", r.ID, err)
		}
	}
	return nil
}
