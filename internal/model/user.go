package model

// Role is one of the closed set of role tags a user may hold.  Roles
// are stored in the `user.roles` JSON column and embedded in the
// access token's "roles" claim.  Free-form role strings are rejected
// at construction via Valid().
type Role string

const (
	// RoleUser marks a plain client account.
	RoleUser Role = "ROLE_USER"
	// RoleProfessional marks an account that can be booked by clients
	// and may list the reservations assigned to it.
	RoleProfessional Role = "ROLE_PROFESSIONAL"
)

// Valid reports whether the role belongs to the closed role set.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleProfessional
}

// User represents an account row in the `user` table.  The password
// hash is kept internal to the repository and handler layers and is
// never serialized into a response; handlers define separate response
// types with explicit JSON tags.
//
// Fields:
//  ID           : primary key identifier of the user.
//  Email        : unique email address.
//  PasswordHash : bcrypt hashed password.
//  Roles        : role tags held by the account (user.roles JSON).
type User struct {
	ID           uint64 // user.id
	Email        string // user.email
	PasswordHash string // user.password
	Roles        []Role // user.roles
}

// HasRole reports whether the user holds the given role tag.
func (u User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// RoleNames returns the role set as plain strings, e.g. for embedding
// into JWT claims.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, string(r))
	}
	return names
}
