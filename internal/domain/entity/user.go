package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema. Este núcleo solo los crea en el
// seed inicial; nunca los modifica ni los elimina.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // sha256(password+salt) en hex, nunca plano después de persistir
	Role         string // admin, user
	CreatedAt    string
}
