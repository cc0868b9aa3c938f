// Package passhash implementa el esquema de hash de contraseñas compartido
// con el componente de autenticación: sha256(password + salt fija) en hex.
//
// ADVERTENCIA DE SEGURIDAD: salt fija a nivel de aplicación y sin factor de
// trabajo. Se mantiene byte-a-byte porque las credenciales ya sembradas se
// verifican recomputando exactamente este esquema; cambiarlo (p. ej. a
// bcrypt) invalidaría todos los password_hash existentes.
package passhash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Salt fija de la aplicación. Debe coincidir con la usada al sembrar.
const Salt = "ims_secure_salt_2025"

// Credenciales por defecto del admin sembrado en el primer arranque.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "admin123"
)

// Hash devuelve el hash hex de sha256(password + Salt).
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password + Salt))
	return hex.EncodeToString(sum[:])
}

// Verify compara en tiempo constante el hash almacenado contra el recomputado.
func Verify(storedHash, password string) bool {
	computed := Hash(password)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(computed)) == 1
}
