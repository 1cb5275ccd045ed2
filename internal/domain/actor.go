package domain

const (
	RoleAdmin        = "admin"
	RoleOrganization = "organization"
	RoleStudent      = "student"
)

// Actor is the authenticated caller: identity plus capability set, resolved by
// the auth middleware from the bearer token.
type Actor struct {
	ID    string
	Roles []string
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanModerate reports whether the actor may approve, reject or cancel events.
func (a Actor) CanModerate() bool {
	return a.HasRole(RoleAdmin) || a.HasRole(RoleOrganization)
}
