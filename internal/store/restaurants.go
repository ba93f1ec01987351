package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/evidenca/internal/model"
)

// InsertRestaurant stores a new restaurant under its id.
func InsertRestaurant(ctx context.Context, db *sql.DB, r model.Restaurant) error {
	return insertRestaurant(ctx, db, r)
}

// RegisterRestaurant stores the restaurant build returns for the next
// restaurant id. The id is only consumed if the restaurant is stored.
func RegisterRestaurant(ctx context.Context, db *sql.DB, build func(id int64) model.Restaurant) (int64, error) {
	return insertNext(ctx, db, model.KindRestaurant, func(tx *sql.Tx, id int64) error {
		r := build(id)
		r.ID = id
		return insertRestaurant(ctx, tx, r)
	})
}

func insertRestaurant(ctx context.Context, db execer, r model.Restaurant) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO restaurants (id, name, address, license_number, owner, is_verified)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Address, r.LicenseNumber, r.Owner, r.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("inserting restaurant: %w", err)
	}
	return nil
}

// GetRestaurant returns a restaurant by ID, or nil if it does not exist.
func GetRestaurant(ctx context.Context, db *sql.DB, id int64) (*model.Restaurant, error) {
	r := &model.Restaurant{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, address, license_number, owner, is_verified
		 FROM restaurants WHERE id = ?`, id,
	).Scan(&r.ID, &r.Name, &r.Address, &r.LicenseNumber, &r.Owner, &r.IsVerified)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting restaurant: %w", err)
	}
	return r, nil
}

// ReplaceRestaurant overwrites every field of a restaurant except its owner.
func ReplaceRestaurant(ctx context.Context, db *sql.DB, r model.Restaurant) error {
	result, err := db.ExecContext(ctx,
		`UPDATE restaurants SET name = ?, address = ?, license_number = ?, is_verified = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		r.Name, r.Address, r.LicenseNumber, r.IsVerified, r.ID,
	)
	if err != nil {
		return fmt.Errorf("replacing restaurant: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("replacing restaurant: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("replacing restaurant: no restaurant with id %d", r.ID)
	}
	return nil
}

// Restaurants adapts the restaurant table to registry.SequencedStore.
type Restaurants struct {
	DB *sql.DB
}

func (s Restaurants) Insert(ctx context.Context, id int64, r model.Restaurant) error {
	r.ID = id
	return InsertRestaurant(ctx, s.DB, r)
}

func (s Restaurants) InsertNext(ctx context.Context, build func(id int64) model.Restaurant) (int64, error) {
	return RegisterRestaurant(ctx, s.DB, build)
}

func (s Restaurants) Get(ctx context.Context, id int64) (*model.Restaurant, error) {
	return GetRestaurant(ctx, s.DB, id)
}

func (s Restaurants) Replace(ctx context.Context, id int64, r model.Restaurant) error {
	r.ID = id
	return ReplaceRestaurant(ctx, s.DB, r)
}
