package animals

import "context"

// Repository es el puerto de persistencia. Todas las implementaciones deben
// devolver ErrNotFound cuando el id no existe.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
	Delete(ctx context.Context, id string) error
}
