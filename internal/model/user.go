package model

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"` // bcrypt hash
	Role     string `db:"role" json:"role"`
}
