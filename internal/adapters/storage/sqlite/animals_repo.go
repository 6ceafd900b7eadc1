package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"zoo-management/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

var _ animals.Repository = (*AnimalsRepo)(nil)

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (id, name, breed, feeding_habit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		a.ID,
		a.Name,
		a.Breed,
		a.FeedingHabit,
		a.CreatedAt.UnixNano(),
		a.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: insert animal: %w", err)
	}
	return nil
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET name = ?, breed = ?, feeding_habit = ?, updated_at = ?
		WHERE id = ?
	`,
		a.Name,
		a.Breed,
		a.FeedingHabit,
		a.UpdatedAt.UnixNano(),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: update animal: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, breed, feeding_habit, created_at, updated_at
		FROM animals
		WHERE id = ?
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, fmt.Errorf("sqlite: get animal: %w", err)
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, breed, feeding_habit, created_at, updated_at
		FROM animals
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list animals: %w", err)
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan animal: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete animal: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// created_at/updated_at se guardan como unix nanos (INTEGER) para que el
// ORDER BY sea numérico y no dependa del formato de texto.
func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a                animals.Animal
		created, updated int64
	)
	if err := s.Scan(&a.ID, &a.Name, &a.Breed, &a.FeedingHabit, &created, &updated); err != nil {
		return animals.Animal{}, err
	}
	a.CreatedAt = time.Unix(0, created).UTC()
	a.UpdatedAt = time.Unix(0, updated).UTC()
	return a, nil
}
