package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

func TestSaleRepo_ListOffsetFueraDeRango(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	sales := store.Sales()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, sales.Create(ctx, &entity.Sale{
			ID: id, Subtotal: decimal.NewFromInt(10), Total: decimal.NewFromInt(10), Status: true,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := sales.List(ctx, entity.SaleFilter{Limit: 2, Offset: -4})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = sales.List(ctx, entity.SaleFilter{Limit: 2, Offset: 3})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = sales.List(ctx, entity.SaleFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s2", list[0].ID)
	assert.Equal(t, "s1", list[1].ID)
}
