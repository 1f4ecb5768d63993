package storage

import (
	"log/slog"
	"slices"

	"github.com/linemk/product-lookup/internal/domain/models"
)

// ListServer хранит товары в исходном порядке, дубликаты по названию сохраняются
type ListServer struct {
	log      *slog.Logger
	products []models.Product
}

var _ ProductServer = (*ListServer)(nil)

// NewListServer создаёт сервер поверх копии переданного списка.
func NewListServer(log *slog.Logger, products []models.Product) *ListServer {
	return &ListServer{
		log:      log,
		products: slices.Clone(products),
	}
}

// GetEntries ищет товары, обходя список по порядку.
func (s *ListServer) GetEntries(nLetters int) ([]models.Product, error) {
	const op = "storage.ListServer.GetEntries"
	return findEntries(s.log, op, slices.Values(s.products), nLetters)
}

func (s *ListServer) Len() int { return len(s.products) }

func (s *ListServer) MaxEntries() int { return MaxReturnedEntries }
