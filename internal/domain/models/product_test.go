package models_test

import (
	"math"
	"testing"

	"github.com/linemk/product-lookup/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_ValidNames(t *testing.T) {
	names := []string{"a1", "Ab12", "XYZ999", "abcdefgh0", "Zz0123456789"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p, err := models.NewProduct(name, 1.5)
			require.NoError(t, err)
			assert.Equal(t, name, p.Name)
			assert.Equal(t, 1.5, p.Price)
		})
	}
}

func TestNewProduct_InvalidNames(t *testing.T) {
	names := []string{"", "abc", "123", "1a", "ab12c", "ab 12", "ab-12", "Äb12", "ab12\n", " ab12"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := models.NewProduct(name, 10)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidName), "expected ErrInvalidName, got %v", err)
		})
	}
}

// цена не проверяется: ноль и отрицательные значения допустимы
func TestNewProduct_AnyPrice(t *testing.T) {
	for _, price := range []float64{0, -1, -0.01, 1e9} {
		p, err := models.NewProduct("ab12", price)
		require.NoError(t, err)
		assert.Equal(t, price, p.Price)
	}
}

func TestProduct_Equal(t *testing.T) {
	p1, err := models.NewProduct("ab12", 10)
	require.NoError(t, err)
	p2, err := models.NewProduct("ab12", 10)
	require.NoError(t, err)
	other, err := models.NewProduct("ab12", 11)
	require.NoError(t, err)

	assert.True(t, p1.Equal(p2))
	assert.True(t, p1.Equal(&p2))
	assert.False(t, p1.Equal(other))
	assert.False(t, p1.Equal("ab12"))
	assert.False(t, p1.Equal(nil))
	assert.False(t, p1.Equal((*models.Product)(nil)))
}

func TestProduct_HashConsistentWithEqual(t *testing.T) {
	p1 := models.Product{Name: "ab12", Price: 10}
	p2 := models.Product{Name: "ab12", Price: 10}
	assert.Equal(t, p1.Hash(), p2.Hash())

	zero := models.Product{Name: "ab12", Price: 0}
	negZero := models.Product{Name: "ab12", Price: math.Copysign(0, -1)}
	require.True(t, zero.Equal(negZero))
	assert.Equal(t, zero.Hash(), negZero.Hash())

	assert.NotEqual(t, p1.Hash(), models.Product{Name: "ab12", Price: 11}.Hash())
	assert.NotEqual(t, p1.Hash(), models.Product{Name: "ab13", Price: 10}.Hash())
}

func TestProduct_AsSetMember(t *testing.T) {
	set := map[models.Product]struct{}{}
	set[models.Product{Name: "ab12", Price: 10}] = struct{}{}
	set[models.Product{Name: "ab12", Price: 10}] = struct{}{}
	set[models.Product{Name: "ab12", Price: 20}] = struct{}{}
	assert.Len(t, set, 2)
}

func TestProduct_String(t *testing.T) {
	assert.Equal(t, "Ab12(10.5)", models.Product{Name: "Ab12", Price: 10.5}.String())
}
