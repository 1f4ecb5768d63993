package storage

import (
	"log/slog"

	"github.com/linemk/product-lookup/internal/domain/models"
	"github.com/pkg/errors"
)

// Kind задаёт вариант хранилища товаров
type Kind string

const (
	KindList Kind = "list"
	KindMap  Kind = "map"
)

var ErrUnknownKind = errors.New("unknown server kind")

// New создаёт сервер нужного вида
func New(kind Kind, log *slog.Logger, products []models.Product) (ProductServer, error) {
	switch kind {
	case KindList:
		return NewListServer(log, products), nil
	case KindMap:
		return NewMapServer(log, products), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}
