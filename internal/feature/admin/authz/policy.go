// Package authz defines the authorization policy for the admin surface.
//
// Access decisions are a plain function of (actor, resource) instead of
// being attached to UI scaffolding, so the policy can be consulted from
// middleware, handlers, or tests alike.
package authz

// Actor is the authenticated principal requesting access.
type Actor struct {
	UserID  uint
	IsAdmin bool
}

// Resource names a protected admin resource.
type Resource string

// Protected admin resources.
const (
	ResourceDashboard Resource = "dashboard"
	ResourceOrders    Resource = "orders"
	ResourceUsers     Resource = "users"
)

// Allowed reports whether the actor may access the resource.
// Every admin resource currently requires the admin role; the signature
// leaves room for finer-grained rules without touching call sites.
func Allowed(actor Actor, resource Resource) bool {
	switch resource {
	case ResourceDashboard, ResourceOrders, ResourceUsers:
		return actor.IsAdmin
	}
	return false
}
