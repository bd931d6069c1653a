package entity

// ModerationState is the public-visibility state of a cafe.
type ModerationState string

const (
	// StatePending is the initial state of a user submission; invisible to the public catalog.
	StatePending ModerationState = "pending"
	// StateVerified marks a cafe approved by an operator.
	StateVerified ModerationState = "verified"
	// StateFeatured is a sub-state of verified, promoted to the top of listings.
	StateFeatured ModerationState = "featured"
)

// String returns the string representation of the ModerationState.
func (s ModerationState) String() string {
	return string(s)
}

// IsPublic reports whether cafes in this state are visible without the operator capability.
func (s ModerationState) IsPublic() bool {
	return s == StateVerified || s == StateFeatured
}

// Capability describes what the caller of the core is allowed to do. It is produced by an
// external authorization collaborator; the core never authenticates anyone itself.
type Capability struct {
	Operator bool
}

// Public is the capability of an anonymous caller.
var Public = Capability{}

// OperatorCapability is the capability of an authenticated catalog operator.
var OperatorCapability = Capability{Operator: true}
