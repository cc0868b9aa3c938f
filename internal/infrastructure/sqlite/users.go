package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/invorya/ims-backend/internal/domain/entity"
)

// GetUserByUsername obtiene un usuario por username. (nil, nil) si no existe.
func (s *Store) GetUserByUsername(username string) (*entity.User, error) {
	var u entity.User
	err := s.db.QueryRow(
		`SELECT id, username, password_hash, role, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}
