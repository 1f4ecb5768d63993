package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidName возвращается, если название товара не соответствует формату "буквы+цифры"
var ErrInvalidName = errors.New("invalid product name")

var productNameRe = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// product_name: одна или больше латинских букв, затем одна или больше цифр
	_ = v.RegisterValidation("product_name", func(fl validator.FieldLevel) bool {
		return productNameRe.MatchString(fl.Field().String())
	})
	return v
}

// Product представляет товар каталога. После создания через NewProduct не изменяется.
type Product struct {
	Name  string  `json:"name" validate:"product_name"` // Название товара, например "Ab123"
	Price float64 `json:"price"`                        // Цена товара, не валидируется
}

// NewProduct создаёт товар, проверяя формат названия
func NewProduct(name string, price float64) (Product, error) {
	p := Product{Name: name, Price: price}
	if err := validate.Struct(p); err != nil {
		return Product{}, errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return p, nil
}

// Equal сравнивает товары по названию и цене.
// Для значений, не являющихся товаром, возвращает false.
func (p Product) Equal(other any) bool {
	switch o := other.(type) {
	case Product:
		return p.Name == o.Name && p.Price == o.Price
	case *Product:
		if o == nil {
			return false
		}
		return p.Name == o.Name && p.Price == o.Price
	default:
		return false
	}
}

// Hash возвращает хеш пары (Name, Price), согласованный с Equal.
func (p Product) Hash() uint64 {
	price := p.Price
	if price == 0 {
		// -0 и +0 равны, но отличаются битами
		price = 0
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(price))

	d := xxhash.New()
	_, _ = d.WriteString(p.Name)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

func (p Product) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, strconv.FormatFloat(p.Price, 'f', -1, 64))
}
