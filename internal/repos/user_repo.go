package repos

import (
	"crudusers/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// Insert stores a new user and returns the id the store assigned.
func (r *UserRepo) Insert(name, email string) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO users(name,email) VALUES(?,?)`, name, email)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAll returns every user in primary-key order. An empty table yields an
// empty, non-nil slice.
func (r *UserRepo) ListAll() ([]domain.User, error) {
	users := []domain.User{}
	err := r.DB.Select(&users, `
		SELECT id, COALESCE(name,'') AS name, COALESCE(email,'') AS email
		FROM users
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update rewrites name and email for id. A missing id is not an error; the
// caller gets 0 affected rows.
func (r *UserRepo) Update(id int64, name, email string) (int64, error) {
	res, err := r.DB.Exec(`UPDATE users SET name=?, email=? WHERE id=?`, name, email, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes id. Same missing-id behavior as Update.
func (r *UserRepo) Delete(id int64) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *UserRepo) Count() (int, error) {
	var n int
	if err := r.DB.Get(&n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, err
	}
	return n, nil
}
