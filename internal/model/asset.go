package model

import "errors"

// KindAsset names the asset registry in journals and metrics.
const KindAsset = "asset"

// Asset is a registered physical asset. Owner is fixed at registration.
type Asset struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"type"`
	Value       int64  `json:"value"`
	Condition   string `json:"condition"`
	Owner       string `json:"owner"`
	IsAvailable bool   `json:"isAvailable"`
}

// OwnedBy returns the identity that registered the asset.
func (a Asset) OwnedBy() string { return a.Owner }

// StatusActive reports whether the asset is available.
func (a Asset) StatusActive() bool { return a.IsAvailable }

// WithIdentity returns a copy of a carrying the given id and owner.
func (a Asset) WithIdentity(id int64, owner string) Asset {
	a.ID = id
	a.Owner = owner
	return a
}

// AssetInput is the full mutable field set of an asset. IsAvailable is
// ignored on registration.
type AssetInput struct {
	Name        string `json:"name"`
	Category    string `json:"type"`
	Value       int64  `json:"value"`
	Condition   string `json:"condition"`
	IsAvailable bool   `json:"isAvailable"`
}

// Validate checks the payload fields.
func (in AssetInput) Validate() error {
	if in.Name == "" {
		return errors.New("name required")
	}
	if in.Value < 0 {
		return errors.New("value must not be negative")
	}
	return nil
}

// Asset builds an unidentified asset from the payload.
func (in AssetInput) Asset() Asset {
	return Asset{
		Name:        in.Name,
		Category:    in.Category,
		Value:       in.Value,
		Condition:   in.Condition,
		IsAvailable: in.IsAvailable,
	}
}
