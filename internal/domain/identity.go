package domain

const (
	RoleSeller = "seller"
	RoleUser   = "user"
)

type Identity struct {
	Email    string `db:"email" json:"email"`
	Name     string `db:"name" json:"name"`
	Role     string `db:"role" json:"userType"` // wire name is userType, not role
	Verified bool   `db:"verified" json:"verified"`
}
