package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/evidenca/internal/model"
)

const assetColumns = `id, name, category, value, condition, owner, is_available`

// InsertAsset stores a new asset under its id.
func InsertAsset(ctx context.Context, db *sql.DB, a model.Asset) error {
	return insertAsset(ctx, db, a)
}

// RegisterAsset stores the asset build returns for the next asset id. The id
// is only consumed if the asset is stored.
func RegisterAsset(ctx context.Context, db *sql.DB, build func(id int64) model.Asset) (int64, error) {
	return insertNext(ctx, db, model.KindAsset, func(tx *sql.Tx, id int64) error {
		a := build(id)
		a.ID = id
		return insertAsset(ctx, tx, a)
	})
}

func insertAsset(ctx context.Context, db execer, a model.Asset) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO assets (`+assetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Category, a.Value, a.Condition, a.Owner, a.IsAvailable,
	)
	if err != nil {
		return fmt.Errorf("inserting asset: %w", err)
	}
	return nil
}

// GetAsset returns an asset by ID, or nil if it does not exist.
func GetAsset(ctx context.Context, db *sql.DB, id int64) (*model.Asset, error) {
	a := &model.Asset{}
	err := db.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.Category, &a.Value, &a.Condition, &a.Owner, &a.IsAvailable)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}
	return a, nil
}

// ReplaceAsset overwrites the mutable fields of an asset. Owner and photo are
// left as they are.
func ReplaceAsset(ctx context.Context, db *sql.DB, a model.Asset) error {
	result, err := db.ExecContext(ctx,
		`UPDATE assets SET name = ?, category = ?, value = ?, condition = ?, is_available = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		a.Name, a.Category, a.Value, a.Condition, a.IsAvailable, a.ID,
	)
	if err != nil {
		return fmt.Errorf("replacing asset: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("replacing asset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("replacing asset: no asset with id %d", a.ID)
	}
	return nil
}

// SetAssetImage sets an asset's photo.
func SetAssetImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE assets SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting asset image: %w", err)
	}
	return nil
}

// GetAssetImage returns an asset's photo and MIME type. Data is nil when the
// asset has no photo.
func GetAssetImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM assets WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting asset image: %w", err)
	}
	return image, mime.String, nil
}

// Assets adapts the asset table to registry.SequencedStore.
type Assets struct {
	DB *sql.DB
}

func (s Assets) Insert(ctx context.Context, id int64, a model.Asset) error {
	a.ID = id
	return InsertAsset(ctx, s.DB, a)
}

func (s Assets) InsertNext(ctx context.Context, build func(id int64) model.Asset) (int64, error) {
	return RegisterAsset(ctx, s.DB, build)
}

func (s Assets) Get(ctx context.Context, id int64) (*model.Asset, error) {
	return GetAsset(ctx, s.DB, id)
}

func (s Assets) Replace(ctx context.Context, id int64, a model.Asset) error {
	a.ID = id
	return ReplaceAsset(ctx, s.DB, a)
}
