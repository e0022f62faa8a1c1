// Package catalog lee catálogos de productos en CSV para la carga inicial.
//
// Formato (con encabezado, en cualquier orden de columnas):
//
//	code,name,price,cost,tax_rate,stock
//	7501055300075,Refresco de cola 600ml,18.50,12.00,0.16,48
//
// tax_rate acepta fracción (0.16) o porcentaje (16).
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	domainsales "github.com/jhoicas/puntoventa-api/internal/domain/sales"
)

// Codificaciones de entrada soportadas.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

var requiredColumns = []string{"code", "name", "price", "tax_rate", "stock"}

// Decoder adapta r a UTF-8 según la codificación declarada.
func Decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
		return r, nil
	case EncodingLatin1, "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}
}

// ParseCSV convierte el CSV en productos activos. Las filas con error se reportan con su número de línea.
func ParseCSV(r io.Reader, encoding string) ([]entity.Product, error) {
	in, err := Decoder(r, encoding)
	if err != nil {
		return nil, err
	}
	rd := csv.NewReader(in)
	rd.TrimLeadingSpace = true

	header, err := rd.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catálogo vacío")
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}

	var out []entity.Product
	seen := map[string]int{}
	for line := 2; ; line++ {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		p, err := parseRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if prev, dup := seen[p.Code]; dup {
			return nil, fmt.Errorf("línea %d: código %q repetido (línea %d)", line, p.Code, prev)
		}
		seen[p.Code] = line
		out = append(out, p)
	}
	return out, nil
}

func parseRow(rec []string, idx map[string]int) (entity.Product, error) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	p := entity.Product{Code: get("code"), Name: get("name"), IsActive: true}
	if p.Code == "" || p.Name == "" {
		return p, errors.New("code y name son requeridos")
	}
	var err error
	if p.Price, err = parseAmount(get("price")); err != nil {
		return p, fmt.Errorf("price: %w", err)
	}
	p.Cost = decimal.Zero
	if raw := get("cost"); raw != "" {
		if p.Cost, err = parseAmount(raw); err != nil {
			return p, fmt.Errorf("cost: %w", err)
		}
	}
	rate, err := parseAmount(get("tax_rate"))
	if err != nil {
		return p, fmt.Errorf("tax_rate: %w", err)
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		rate = domainsales.TaxRateFromPercent(rate)
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return p, fmt.Errorf("tax_rate fuera de rango: %s", get("tax_rate"))
	}
	p.TaxRate = rate
	if p.Stock, err = strconv.Atoi(get("stock")); err != nil || p.Stock < 0 {
		return p, fmt.Errorf("stock inválido: %q", get("stock"))
	}
	return p, nil
}

// parseAmount acepta "18.50" y también "$1,250.00".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("importe inválido %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("importe negativo %q", s)
	}
	return d, nil
}
