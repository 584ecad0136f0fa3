package entity

const RoleAdmin = "admin"

// AdminLoginData is what the token middleware stores in fiber Locals.
type AdminLoginData struct {
	ID       string
	Username string
	Role     string
}
