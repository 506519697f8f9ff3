package entity

type UserRole string

const (
	RoleGuest UserRole = "guest"
	RoleHost  UserRole = "host"
	RoleAdmin UserRole = "admin"
)

// ValidRole reports whether s is one of the three known roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
