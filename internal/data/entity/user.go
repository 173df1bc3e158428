package entity

type UserRole string

const (
	RoleVisitor UserRole = "visitor"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
