package store

import "context"

// Entity is implemented by the pointer form of every record a Repository
// holds. Identifiers are owned by the repository and assigned on Add.
type Entity interface {
	EntityID() int
	SetEntityID(id int)
	DisplayName() string
}

// Repository is the keyed collection contract shared by patients, doctors
// and appointments. GetByID wraps ErrNotFound when the id is absent; Update
// and Delete of an absent id are no-ops.
type Repository[T any] interface {
	Add(ctx context.Context, entity T) (T, error)
	GetByID(ctx context.Context, id int) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id int) error
}
