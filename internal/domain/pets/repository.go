package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id string) (Profile, error)
	ListByUser(ctx context.Context, userID string) ([]Profile, error)
}
