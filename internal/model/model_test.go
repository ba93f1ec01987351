package model

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role     string
		minimum  string
		expected bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleUser, true},
		{RoleUser, RoleAdmin, false},
		{RoleUser, RoleUser, true},
		// Unknown roles fail-closed.
		{"unknown", RoleUser, false},
		{RoleAdmin, "unknown", false},
		{"", "", false},
		{"", RoleUser, false},
	}

	for _, tt := range tests {
		got := RoleAtLeast(tt.role, tt.minimum)
		if got != tt.expected {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tt.role, tt.minimum, got, tt.expected)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"1234567", true},
		{"12345678", false},
		{"a-valid-password", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestAssetInputValidate(t *testing.T) {
	tests := []struct {
		in      AssetInput
		wantErr bool
	}{
		{AssetInput{Name: "Commercial Oven", Value: 5000}, false},
		{AssetInput{Name: "Free Sample", Value: 0}, false},
		{AssetInput{Name: "", Value: 10}, true},
		{AssetInput{Name: "Broken", Value: -1}, true},
	}

	for _, tt := range tests {
		err := tt.in.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestWithIdentityKeepsFields(t *testing.T) {
	in := AssetInput{Name: "Mixer", Category: "Baking", Value: 300, Condition: "Used", IsAvailable: false}
	a := in.Asset().WithIdentity(7, "owner1")

	if a.ID != 7 || a.Owner != "owner1" {
		t.Errorf("expected id 7 owned by owner1, got id %d owner %q", a.ID, a.Owner)
	}
	if a.Name != "Mixer" || a.Category != "Baking" || a.Value != 300 || a.Condition != "Used" {
		t.Errorf("payload fields not carried over: %+v", a)
	}

	r := RestaurantInput{Name: "Gourmet Kitchen"}.Restaurant()
	if r.IsVerified {
		t.Error("expected restaurant built from input to be unverified")
	}
}
