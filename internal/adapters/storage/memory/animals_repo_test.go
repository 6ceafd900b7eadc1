package memory_test

import (
	"testing"

	"zoo-management/internal/adapters/storage/memory"
	"zoo-management/internal/adapters/storage/storagetest"
	"zoo-management/internal/domain/animals"
)

func TestAnimalRepo(t *testing.T) {
	storagetest.RunAnimalRepository(t, func(t *testing.T) animals.Repository {
		return memory.NewAnimalRepo()
	})
}
