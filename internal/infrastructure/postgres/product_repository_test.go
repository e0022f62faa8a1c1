package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProductSQL_ConflictoNoTocaStock(t *testing.T) {
	sql := strings.Join(strings.Fields(upsertProductSQL), " ")

	i := strings.Index(sql, "DO UPDATE SET")
	require.GreaterOrEqual(t, i, 0)
	j := strings.Index(sql, "RETURNING")
	require.Greater(t, j, i)
	onConflict := sql[i:j]

	assert.NotContains(t, onConflict, "stock")
	assert.Contains(t, onConflict, "price = EXCLUDED.price")
	assert.Contains(t, sql[:i], "INSERT INTO products (name, category_id, code, stock,")
}
