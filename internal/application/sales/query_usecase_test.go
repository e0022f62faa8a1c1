package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/application/sales"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

func TestGetPaymentMethods_SoloActivos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.query.GetPaymentMethods(ctx)
	assert.ErrorIs(t, err, domain.ErrNotLogged)

	f.login(t)
	require.NoError(t, f.store.PaymentMethods().SetActive(ctx, 3, false))

	methods, err := f.query.GetPaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 3)
	assert.Equal(t, dto.PaymentMethodResponse{ID: 1, Name: "Efectivo", SATKey: "01"}, methods[0])
	for _, m := range methods {
		assert.NotEqual(t, int64(3), m.ID)
	}
}

func TestGetPaymentMethods_RequiereSalesView(t *testing.T) {
	f := newFixture(t)
	f.login(t, entity.PermSalesCreate)
	_, err := f.query.GetPaymentMethods(context.Background())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestListSales_PaginacionYOrden(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		resp, err := f.create.CreateSale(ctx, dosRefrescos(f))
		require.NoError(t, err)
		ids = append(ids, resp.SaleID)
		time.Sleep(2 * time.Millisecond)
	}

	page, err := f.query.ListSales(ctx, dto.ListSalesRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Sales, 2)
	assert.Equal(t, ids[2], page.Sales[0].ID, "más reciente primero")

	page, err = f.query.ListSales(ctx, dto.ListSalesRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Sales, 1)
	assert.Equal(t, ids[0], page.Sales[0].ID)

	page, err = f.query.ListSales(ctx, dto.ListSalesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Len(t, page.Sales, 3)
}

func TestListSales_FiltrosDeFecha(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	_, err := f.create.CreateSale(ctx, dosRefrescos(f))
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	page, err := f.query.ListSales(ctx, dto.ListSalesRequest{DateFrom: today, DateTo: today})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalItems)

	page, err = f.query.ListSales(ctx, dto.ListSalesRequest{DateFrom: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)

	inactive := false
	page, err = f.query.ListSales(ctx, dto.ListSalesRequest{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalItems)

	_, err = f.query.ListSales(ctx, dto.ListSalesRequest{DateFrom: tomorrow, DateTo: today})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.query.ListSales(ctx, dto.ListSalesRequest{DateFrom: "15/01/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetSale_ConDetalleYPagos(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	created, err := f.create.CreateSale(ctx, dosRefrescos(f))
	require.NoError(t, err)

	sale, err := f.query.GetSale(ctx, created.SaleID)
	require.NoError(t, err)
	require.Len(t, sale.Details, 1)
	assert.Equal(t, "Refresco", sale.Details[0].ProductName)
	assert.True(t, sale.Details[0].TaxPercent.Equal(dec("16")))
	assert.True(t, sale.TaxTotal.Equal(dec("16")))
	require.Len(t, sale.Payments, 1)
	assert.Equal(t, "Efectivo", sale.Payments[0].PaymentMethodName)

	_, err = f.query.GetSale(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

type fakeReceipts struct {
	got sales.ReceiptData
}

func (g *fakeReceipts) GenerateReceipt(_ context.Context, data sales.ReceiptData) ([]byte, error) {
	g.got = data
	return []byte("%PDF-fake"), nil
}

func TestGenerateReceipt(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	created, err := f.create.CreateSale(ctx, dosRefrescos(f))
	require.NoError(t, err)

	gen := &fakeReceipts{}
	uc := sales.NewReceiptUseCase(f.query, gen, sales.ReceiptConfig{StoreName: "Abarrotes", Footer: "Gracias"})

	pdf, name, err := uc.GenerateReceipt(ctx, created.SaleID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "ticket-"+created.SaleID[:8]+".pdf", name)

	assert.Equal(t, "Abarrotes", gen.got.StoreName)
	assert.Equal(t, "cajero1", gen.got.Cashier)
	assert.Equal(t, "Efectivo", gen.got.PaymentMethod)
	require.Len(t, gen.got.Lines, 1)
	assert.Equal(t, 2, gen.got.Lines[0].Quantity)
	assert.True(t, gen.got.Lines[0].TaxPercent.Equal(dec("16")))
	assert.True(t, gen.got.Total.Equal(dec("116")))

	_, _, err = uc.GenerateReceipt(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestListSales_PaginaQueDesbordaOffset(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	_, err := f.create.CreateSale(ctx, dosRefrescos(f))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err = f.query.ListSales(ctx, dto.ListSalesRequest{Page: 1<<62 + 1, Limit: 2})
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Página válida pero más allá del final: lista vacía con totales.
	page, err := f.query.ListSales(ctx, dto.ListSalesRequest{Page: 1 << 40, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Sales)
	assert.Equal(t, 1, page.TotalItems)
}
