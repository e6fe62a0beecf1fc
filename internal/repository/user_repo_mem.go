package repository

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// UserRepository is part of the store contract but no HTTP route uses it.
type UserRepository interface {
	Create(ctx context.Context, draft domain.User) (domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type MemUserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) UserRepository {
	return &MemUserRepository{store: store}
}

func (r *MemUserRepository) Create(_ context.Context, draft domain.User) (domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	draft.ID = r.store.nextUserID
	r.store.nextUserID++
	r.store.users[draft.ID] = draft
	return draft, nil
}

func (r *MemUserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (r *MemUserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id := int64(1); id < r.store.nextUserID; id++ {
		if user, ok := r.store.users[id]; ok && user.Username == username {
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

var _ UserRepository = (*MemUserRepository)(nil)
