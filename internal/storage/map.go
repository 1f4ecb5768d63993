package storage

import (
	"iter"
	"log/slog"

	"github.com/linemk/product-lookup/internal/domain/models"
)

// MapServer хранит товары по названию.
// При повторяющихся названиях побеждает последний товар, но позиция в порядке обхода
// остаётся за первым вхождением.
type MapServer struct {
	log      *slog.Logger
	products map[string]models.Product
	order    []string // названия в порядке первого появления
}

var _ ProductServer = (*MapServer)(nil)

// NewMapServer создаёт сервер, перекладывая список в map по названию товара.
func NewMapServer(log *slog.Logger, products []models.Product) *MapServer {
	s := &MapServer{
		log:      log,
		products: make(map[string]models.Product, len(products)),
		order:    make([]string, 0, len(products)),
	}
	for _, p := range products {
		if _, ok := s.products[p.Name]; !ok {
			s.order = append(s.order, p.Name)
		} else {
			log.Debug("duplicate product name overwritten",
				slog.String("op", "storage.NewMapServer"),
				slog.String("name", p.Name),
			)
		}
		s.products[p.Name] = p
	}
	return s
}

// GetEntries ищет товары, обходя map в порядке добавления ключей.
func (s *MapServer) GetEntries(nLetters int) ([]models.Product, error) {
	const op = "storage.MapServer.GetEntries"
	return findEntries(s.log, op, s.values(), nLetters)
}

func (s *MapServer) values() iter.Seq[models.Product] {
	return func(yield func(models.Product) bool) {
		for _, name := range s.order {
			if !yield(s.products[name]) {
				return
			}
		}
	}
}

func (s *MapServer) Len() int { return len(s.order) }

func (s *MapServer) MaxEntries() int { return MaxReturnedEntries }
