package storage

import (
	"cmp"
	"iter"
	"log/slog"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/product-lookup/internal/domain/models"
	"github.com/pkg/errors"
)

// MaxReturnedEntries — максимальное число товаров, которое может вернуть один запрос
const MaxReturnedEntries = 7

// Количество цифр после букв в названии товара
const (
	minDigits = 2
	maxDigits = 3
)

var (
	ErrInvalidArgument = errors.New("n_letters must be an integer >= 1")
	ErrTooManyResults  = errors.New("too many products match the query")
)

// ProductServer описывает поиск товаров по шаблону названия.
type ProductServer interface {
	// GetEntries возвращает товары, название которых состоит ровно из nLetters букв
	// и 2-3 цифр, отсортированные по возрастанию цены.
	GetEntries(nLetters int) ([]models.Product, error)
}

var validate = validator.New()

// ValidateNLetters проверяет, что количество букв - целое число >= 1.
// Нулевое значение соответствует отсутствующему аргументу и тоже считается ошибкой.
func ValidateNLetters(nLetters int) (int, error) {
	if err := validate.Var(nLetters, "gte=1"); err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "got %d", nLetters)
	}
	return nLetters, nil
}

// matchesPattern проверяет полное совпадение с ^[A-Za-z]{n}[0-9]{2,3}$
func matchesPattern(name string, nLetters int) bool {
	digits := len(name) - nLetters
	if digits < minDigits || digits > maxDigits {
		return false
	}
	for i := 0; i < nLetters; i++ {
		if !isLetter(name[i]) {
			return false
		}
	}
	for i := nLetters; i < len(name); i++ {
		if !isDigit(name[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// findEntries — общий для всех хранилищ конвейер: валидация, фильтр, сортировка, проверка лимита.
// Порядок товаров с одинаковой ценой совпадает с порядком обхода хранилища.
func findEntries(log *slog.Logger, op string, products iter.Seq[models.Product], nLetters int) ([]models.Product, error) {
	logger := log.With(slog.String("op", op), slog.Int("nLetters", nLetters))

	n, err := ValidateNLetters(nLetters)
	if err != nil {
		logger.Debug("invalid argument", slog.Any("error", err))
		return nil, errors.Wrap(err, op)
	}

	found := make([]models.Product, 0)
	for p := range products {
		if matchesPattern(p.Name, n) {
			found = append(found, p)
		}
	}

	slices.SortStableFunc(found, func(a, b models.Product) int {
		return cmp.Compare(a.Price, b.Price)
	})

	if len(found) > MaxReturnedEntries {
		logger.Debug("too many products found", slog.Int("found", len(found)), slog.Int("max", MaxReturnedEntries))
		return nil, errors.Wrapf(ErrTooManyResults, "%s: found %d, max %d", op, len(found), MaxReturnedEntries)
	}

	logger.Debug("products found", slog.Int("found", len(found)))
	return found, nil
}
