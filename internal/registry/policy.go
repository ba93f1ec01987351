package registry

// Action names a mutation subject to authorization.
type Action string

const (
	ActionRegister Action = "register"
	ActionUpdate   Action = "update"
	ActionVerify   Action = "verify"
	ActionImage    Action = "image"
)

// Decision is the outcome of a policy evaluation.
type Decision bool

const (
	Allow Decision = true
	Deny  Decision = false
)

// Owned is implemented by records that remember who registered them.
type Owned interface {
	OwnedBy() string
}

// Policy decides whether caller may perform action on rec.
// Implementations must be pure.
type Policy interface {
	Evaluate(caller string, rec Owned, action Action) Decision
}

// OwnerOnly allows only the identity that registered the record.
type OwnerOnly struct{}

func (OwnerOnly) Evaluate(caller string, rec Owned, _ Action) Decision {
	return Decision(caller != "" && caller == rec.OwnedBy())
}

// FixedAdministrator allows only one identity, chosen at construction,
// regardless of who owns the record.
type FixedAdministrator struct {
	admin string
}

// NewFixedAdministrator returns a policy for admin. An empty admin denies
// every caller.
func NewFixedAdministrator(admin string) FixedAdministrator {
	return FixedAdministrator{admin: admin}
}

// Administrator returns the configured identity.
func (p FixedAdministrator) Administrator() string { return p.admin }

func (p FixedAdministrator) Evaluate(caller string, _ Owned, _ Action) Decision {
	return Decision(p.admin != "" && caller == p.admin)
}
