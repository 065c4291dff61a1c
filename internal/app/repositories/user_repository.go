package repositories

import (
	"fmt"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/store"
)

// UserRepository handles rows of the users table.
type UserRepository struct {
	store *store.Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(st *store.Store) *UserRepository {
	return &UserRepository{store: st}
}

func userToRow(u models.User) store.Row {
	return store.Row{
		store.ColInstitution: u.Institution,
		store.ColUsername:    u.Username,
		store.ColPassword:    u.Password,
		store.ColRole:        string(u.Role),
	}
}

// Create appends a new account row. There is deliberately no uniqueness
// check: re-registering with identical credentials adds a duplicate row,
// matching the portal's historical registration behavior.
func (r *UserRepository) Create(user models.User) error {
	if err := r.store.Append(store.TableUsers, userToRow(user)); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// Exists reports whether an account row matches all four fields exactly.
func (r *UserRepository) Exists(institution, username, password string, role models.Role) (bool, error) {
	rows, err := r.store.Load(store.TableUsers)
	if err != nil {
		return false, fmt.Errorf("error loading users: %w", err)
	}

	for _, row := range rows {
		if row[store.ColInstitution] == institution &&
			row[store.ColUsername] == username &&
			row[store.ColPassword] == password &&
			row[store.ColRole] == string(role) {
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of account rows.
func (r *UserRepository) Count() (int, error) {
	rows, err := r.store.Load(store.TableUsers)
	if err != nil {
		return 0, fmt.Errorf("error loading users: %w", err)
	}
	return len(rows), nil
}
