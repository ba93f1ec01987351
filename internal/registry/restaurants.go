package registry

import (
	"context"

	"github.com/erazemk/evidenca/internal/model"
)

// RestaurantRegistry lets anyone register a restaurant and only the
// administrator change its verification.
type RestaurantRegistry struct {
	svc   *Service[model.Restaurant]
	admin string
}

func NewRestaurantRegistry(ids Allocator, records Store[model.Restaurant], admin string, opts Options) *RestaurantRegistry {
	return &RestaurantRegistry{
		svc:   NewService[model.Restaurant](model.KindRestaurant, ids, records, NewFixedAdministrator(admin), opts),
		admin: admin,
	}
}

// Administrator returns the identity allowed to verify restaurants.
func (r *RestaurantRegistry) Administrator() string { return r.admin }

// Register records a new, unverified restaurant owned by caller.
func (r *RestaurantRegistry) Register(ctx context.Context, in model.RestaurantInput, caller string) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, invalid(err)
	}
	return r.svc.Register(ctx, caller, in.Restaurant())
}

func (r *RestaurantRegistry) Get(ctx context.Context, id int64) (*model.Restaurant, error) {
	return r.svc.Get(ctx, id)
}

// Verify sets the verification flag. Only the administrator may call it.
func (r *RestaurantRegistry) Verify(ctx context.Context, id int64, verified bool, caller string) error {
	return r.svc.Update(ctx, id, caller, ActionVerify, func(cur model.Restaurant) (model.Restaurant, error) {
		cur.IsVerified = verified
		return cur, nil
	})
}

// AuthorizeVerify checks that caller may change the verification flag.
func (r *RestaurantRegistry) AuthorizeVerify(ctx context.Context, id int64, caller string) error {
	_, err := r.svc.Authorize(ctx, id, caller, ActionVerify)
	return err
}

// IsVerified reports whether the restaurant exists and is verified.
func (r *RestaurantRegistry) IsVerified(ctx context.Context, id int64) (bool, error) {
	return r.svc.IsStatusActive(ctx, id)
}
