package services

import (
	"crudusers/internal/domain"
	"crudusers/internal/repos"
	"crudusers/internal/validate"
)

type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService {
	return &UserService{Users: users}
}

// Create stores in and returns the assigned id.
func (s *UserService) Create(in validate.UserInput) (int64, error) {
	return s.Users.Insert(in.Name, in.Email)
}

// List returns a snapshot of all users in store order.
func (s *UserService) List() ([]domain.User, error) {
	return s.Users.ListAll()
}

// Update applies in to id unconditionally. The affected count is returned for
// logging; zero means id did not exist, which callers still treat as success.
func (s *UserService) Update(id int64, in validate.UserInput) (int64, error) {
	return s.Users.Update(id, in.Name, in.Email)
}

// Delete removes id unconditionally; see Update for the affected count.
func (s *UserService) Delete(id int64) (int64, error) {
	return s.Users.Delete(id)
}

func (s *UserService) Count() (int, error) {
	return s.Users.Count()
}
