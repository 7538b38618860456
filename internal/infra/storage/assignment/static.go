package assignment

import (
	"context"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type usersFile struct {
	Users []struct {
		ID       string `toml:"id"`
		Location string `toml:"location"`
		Floor    string `toml:"floor"`
	} `toml:"users"`
}

// StaticRepository справочник пользователей в памяти, загружается один раз при старте
type StaticRepository struct {
	users map[string]domain.UserAssignment
}

// NewStaticRepository создает справочник из списка рабочих мест
func NewStaticRepository(assignments []domain.UserAssignment) (*StaticRepository, error) {
	users := make(map[string]domain.UserAssignment, len(assignments))
	for _, a := range assignments {
		if a.UserID == "" || a.Location == "" || a.Floor == "" {
			return nil, fmt.Errorf("%w: user %q has empty fields", ErrInvalidUsers, a.UserID)
		}
		if _, exists := users[a.UserID]; exists {
			return nil, fmt.Errorf("%w: duplicate user %q", ErrInvalidUsers, a.UserID)
		}
		users[a.UserID] = a
	}
	return &StaticRepository{users: users}, nil
}

// LoadStaticFile загружает справочник из TOML файла (секции [[users]])
func LoadStaticFile(path string) (*StaticRepository, error) {
	var f usersFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidUsers, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidUsers, undecoded)
	}

	assignments := make([]domain.UserAssignment, 0, len(f.Users))
	for _, u := range f.Users {
		assignments = append(assignments, domain.UserAssignment{UserID: u.ID, Location: u.Location, Floor: u.Floor})
	}
	return NewStaticRepository(assignments)
}

// GetUserAssignment получает рабочее место пользователя по логину
func (r *StaticRepository) GetUserAssignment(_ context.Context, userID string) (*domain.UserAssignment, error) {
	a, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return &a, nil
}

// All возвращает все рабочие места, отсортированные по логину
func (r *StaticRepository) All() []domain.UserAssignment {
	result := make([]domain.UserAssignment, 0, len(r.users))
	for _, a := range r.users {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result
}
