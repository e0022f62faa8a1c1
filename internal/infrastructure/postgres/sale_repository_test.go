package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

func TestSaleWhere(t *testing.T) {
	where, args := saleWhere(entity.SaleFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	active := true
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	where, args = saleWhere(entity.SaleFilter{Status: &active, DateFrom: &from, DateTo: &to})
	assert.Equal(t, " WHERE status = $1 AND created_at >= $2 AND created_at < $3", where)
	assert.Equal(t, []any{true, from, to}, args)
}
