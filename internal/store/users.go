package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/imob/internal/common"
	"github.com/dmitrijs2005/imob/internal/models"
)

// defaultPhone is given to every user created by login.
const defaultPhone = "1199999999"

func (s *store) GetSession(ctx context.Context) (*models.User, error) {
	var u models.User
	present, err := s.load(ctx, common.KeyCurrentUser, &u)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return &u, nil
}

func (s *store) Login(ctx context.Context, email string) (models.User, error) {
	var users []models.User
	if _, err := s.load(ctx, common.KeyUsers, &users); err != nil {
		return models.User{}, err
	}

	writes := make(map[string][]byte, 2)

	user, found := findUser(users, email)
	if !found {
		name, _, _ := strings.Cut(email, "@")
		user = models.User{ID: s.newID(), Email: email, Name: name, Phone: defaultPhone}
		users = append(users, user)

		b, err := encode(common.KeyUsers, users)
		if err != nil {
			return models.User{}, err
		}
		writes[common.KeyUsers] = b
	}

	b, err := encode(common.KeyCurrentUser, user)
	if err != nil {
		return models.User{}, err
	}
	writes[common.KeyCurrentUser] = b

	if err := s.repo.SetMany(ctx, writes); err != nil {
		return models.User{}, fmt.Errorf("failed to write session: %w", err)
	}

	if !found {
		s.log.Debug(ctx, "user created", "id", user.ID, "email", user.Email)
	}
	s.log.Debug(ctx, "logged in", "id", user.ID)
	return user, nil
}

func findUser(users []models.User, email string) (models.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *store) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
