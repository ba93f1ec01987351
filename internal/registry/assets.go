package registry

import (
	"context"

	"github.com/erazemk/evidenca/internal/model"
)

// AssetRegistry registers assets and lets only their owner update them.
type AssetRegistry struct {
	svc *Service[model.Asset]
}

func NewAssetRegistry(ids Allocator, records Store[model.Asset], opts Options) *AssetRegistry {
	return &AssetRegistry{
		svc: NewService[model.Asset](model.KindAsset, ids, records, OwnerOnly{}, opts),
	}
}

// Register records a new asset owned by caller. The asset always starts out
// available, whatever in.IsAvailable says.
func (r *AssetRegistry) Register(ctx context.Context, in model.AssetInput, caller string) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, invalid(err)
	}
	a := in.Asset()
	a.IsAvailable = true
	return r.svc.Register(ctx, caller, a)
}

func (r *AssetRegistry) Get(ctx context.Context, id int64) (*model.Asset, error) {
	return r.svc.Get(ctx, id)
}

// Update replaces every field of the asset, including availability, with in.
func (r *AssetRegistry) Update(ctx context.Context, id int64, in model.AssetInput, caller string) error {
	return r.svc.Update(ctx, id, caller, ActionUpdate, func(model.Asset) (model.Asset, error) {
		if err := in.Validate(); err != nil {
			return model.Asset{}, invalid(err)
		}
		return in.Asset(), nil
	})
}

// IsAvailable reports whether the asset exists and is available.
func (r *AssetRegistry) IsAvailable(ctx context.Context, id int64) (bool, error) {
	return r.svc.IsStatusActive(ctx, id)
}

// AuthorizeUpdate checks that caller may update the asset, without changing it.
func (r *AssetRegistry) AuthorizeUpdate(ctx context.Context, id int64, caller string) error {
	_, err := r.svc.Authorize(ctx, id, caller, ActionUpdate)
	return err
}

// AuthorizeImage checks that caller may change the asset's photo.
func (r *AssetRegistry) AuthorizeImage(ctx context.Context, id int64, caller string) error {
	_, err := r.svc.Authorize(ctx, id, caller, ActionImage)
	return err
}

// SetImage runs write, which stores the asset's photo, if caller owns the
// asset.
func (r *AssetRegistry) SetImage(ctx context.Context, id int64, caller string, write func(ctx context.Context) error) error {
	return r.svc.Apply(ctx, id, caller, ActionImage, write)
}
