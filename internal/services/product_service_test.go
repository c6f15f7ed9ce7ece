package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newProductFixture(t *testing.T) (*ProductService, *memState) {
	t.Helper()
	state := newMemState()
	_, products, _ := state.repos()
	return NewProductService(products), state
}

func TestProductCRUD(t *testing.T) {
	svc, _ := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:  "Coffee Beans",
		Unit:  "kg",
		Price: price("12.50"),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := svc.FindOne(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Coffee Beans", found.Name)
	assert.True(t, found.Price.Equal(price("12.50")))

	newPrice := price("14.00")
	updated, err := svc.Update(ctx, created.ID, UpdateProductInput{Price: &newPrice})
	assert.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Coffee Beans", updated.Name)

	all, err := svc.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	assert.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.FindOne(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductNotFound(t *testing.T) {
	svc, _ := newProductFixture(t)
	ctx := context.Background()

	_, err := svc.FindOne(ctx, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	name := "x"
	_, err = svc.Update(ctx, "missing", UpdateProductInput{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
