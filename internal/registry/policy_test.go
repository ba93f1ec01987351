package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erazemk/evidenca/internal/model"
)

func TestOwnerOnly(t *testing.T) {
	rec := model.Asset{Owner: "owner1"}

	assert.Equal(t, Allow, OwnerOnly{}.Evaluate("owner1", rec, ActionUpdate))
	assert.Equal(t, Deny, OwnerOnly{}.Evaluate("owner2", rec, ActionUpdate))
	assert.Equal(t, Deny, OwnerOnly{}.Evaluate("", model.Asset{}, ActionUpdate), "empty identity never owns a record")
}

func TestFixedAdministrator(t *testing.T) {
	p := NewFixedAdministrator("contract-owner")
	rec := model.Restaurant{Owner: "owner1"}

	assert.Equal(t, Allow, p.Evaluate("contract-owner", rec, ActionVerify))
	assert.Equal(t, Deny, p.Evaluate("owner1", rec, ActionVerify), "record owner is not the administrator")
	assert.Equal(t, Deny, p.Evaluate("not-owner", rec, ActionVerify))
	assert.Equal(t, "contract-owner", p.Administrator())

	unset := NewFixedAdministrator("")
	assert.Equal(t, Deny, unset.Evaluate("", rec, ActionVerify))
}

func TestCode(t *testing.T) {
	assert.Equal(t, 200, Code(nil))
	assert.Equal(t, 404, Code(ErrNotFound))
	assert.Equal(t, 403, Code(ErrForbidden))
	assert.Equal(t, 400, Code(invalid(assert.AnError)))
	assert.Equal(t, 503, Code(unavailable("reading record", assert.AnError)))
}
