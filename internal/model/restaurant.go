package model

import "errors"

// KindRestaurant names the restaurant registry in journals and metrics.
const KindRestaurant = "restaurant"

// Restaurant is a self-registered restaurant awaiting or holding verification.
type Restaurant struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	LicenseNumber string `json:"licenseNumber"`
	Owner         string `json:"owner"`
	IsVerified    bool   `json:"isVerified"`
}

func (r Restaurant) OwnedBy() string { return r.Owner }

func (r Restaurant) StatusActive() bool { return r.IsVerified }

func (r Restaurant) WithIdentity(id int64, owner string) Restaurant {
	r.ID = id
	r.Owner = owner
	return r
}

// RestaurantInput is the registration payload. A restaurant can never be
// registered as verified.
type RestaurantInput struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	LicenseNumber string `json:"licenseNumber"`
}

// Validate checks the payload fields.
func (in RestaurantInput) Validate() error {
	if in.Name == "" {
		return errors.New("name required")
	}
	return nil
}

// Restaurant builds an unverified, unidentified restaurant from the payload.
func (in RestaurantInput) Restaurant() Restaurant {
	return Restaurant{
		Name:          in.Name,
		Address:       in.Address,
		LicenseNumber: in.LicenseNumber,
	}
}
