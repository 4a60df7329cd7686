package types

// DefaultRole is assigned to every account created through registration.
const DefaultRole = "user"

// User is one registered account as stored in the users file.
//
// The JSON field names are the on-disk format and must not change.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"correo"`
	Password  string `json:"contrasena"`
	Role      string `json:"role"`
}

// Username returns the session key for the user.
func (u User) Username() Username { return Username(u.Email) }

// NewUser carries registration input.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}
