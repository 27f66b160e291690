package memory

import (
	"clinicdesk/cmd/internal/domain/entity"
	"sync"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (u *UserRepository) FindByID(id int) (*entity.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, user := range u.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *UserRepository) FindByUsername(username string) (*entity.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, user := range u.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *UserRepository) Save(user *entity.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if user.ID == 0 {
		user.ID = len(u.users) + 1
	}
	for i := range u.users {
		if u.users[i].ID == user.ID {
			u.users[i] = *user
			return nil
		}
	}
	u.users = append(u.users, *user)
	return nil
}
