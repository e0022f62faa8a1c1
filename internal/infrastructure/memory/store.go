// Package memory implementa los puertos de persistencia en memoria.
// Se usa con APP_STORAGE=memory (demo sin base de datos) y en tests.
// Las transacciones se serializan completas: snapshot, callback, commit por intercambio.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// Operaciones donde se puede inyectar un fallo (tests de atomicidad).
const (
	OpCreateSale    = "sales.create"
	OpCreateDetail  = "sales.create_detail"
	OpCreatePayment = "sales.create_payment"
	OpApplyPatch    = "products.apply_patch"
	OpCommit        = "tx.commit"
)

// ErrInjected es el error por defecto de InjectFault.
var ErrInjected = errors.New("memory: fallo inyectado")

type state struct {
	users          map[string]*entity.User
	profiles       map[int64]*entity.Profile
	permissions    map[int64]*entity.Permission
	profilePerms   map[int64][]int64
	products       map[int64]*entity.Product
	paymentMethods map[int64]*entity.PaymentMethod
	sales          map[string]*entity.Sale
	details        []*entity.SaleDetail
	payments       []*entity.SalePayment

	nextProfileID       int64
	nextPermissionID    int64
	nextProductID       int64
	nextPaymentMethodID int64
	nextDetailID        int64
	nextPaymentID       int64
}

func newState() *state {
	return &state{
		users:          map[string]*entity.User{},
		profiles:       map[int64]*entity.Profile{},
		permissions:    map[int64]*entity.Permission{},
		profilePerms:   map[int64][]int64{},
		products:       map[int64]*entity.Product{},
		paymentMethods: map[int64]*entity.PaymentMethod{},
		sales:          map[string]*entity.Sale{},
	}
}

// clone copia todo lo que una transacción de venta puede modificar.
// Usuarios, perfiles y permisos no cambian dentro de una venta y se comparten.
func (s *state) clone() *state {
	c := *s
	c.products = make(map[int64]*entity.Product, len(s.products))
	for id, p := range s.products {
		c.products[id] = cloneProduct(p)
	}
	c.sales = make(map[string]*entity.Sale, len(s.sales))
	for id, sale := range s.sales {
		cp := *sale
		c.sales[id] = &cp
	}
	c.details = append([]*entity.SaleDetail(nil), s.details...)
	c.payments = append([]*entity.SalePayment(nil), s.payments...)
	return &c
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	if p.CategoryID != nil {
		id := *p.CategoryID
		cp.CategoryID = &id
	}
	return &cp
}

// Store es la base de datos en memoria.
type Store struct {
	mu   sync.Mutex // protege data
	txMu sync.Mutex // serializa escrituras
	data *state
	now  func() time.Time

	faultMu sync.Mutex
	faults  map[string]error
}

// NewStore crea un store vacío (sin semillas).
func NewStore() *Store {
	return &Store{
		data:   newState(),
		now:    func() time.Time { return time.Now().UTC() },
		faults: map[string]error{},
	}
}

// SetClock fija el reloj (tests).
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// InjectFault hace fallar la operación op con err (nil = ErrInjected) hasta ClearFaults.
func (s *Store) InjectFault(op string, err error) {
	if err == nil {
		err = ErrInjected
	}
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults[op] = err
}

// ClearFaults elimina los fallos inyectados.
func (s *Store) ClearFaults() {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults = map[string]error{}
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	if err, ok := s.faults[op]; ok {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// handle da acceso al estado: con candado fuera de transacción, sin él dentro.
type handle struct {
	store *Store
	tx    *state
}

func (h handle) read(fn func(st *state)) {
	if h.tx != nil {
		fn(h.tx)
		return
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	fn(h.store.data)
}

// write fuera de transacción toma txMu para no perderse en un commit concurrente.
func (h handle) write(fn func(st *state) error) error {
	if h.tx != nil {
		return fn(h.tx)
	}
	h.store.txMu.Lock()
	defer h.store.txMu.Unlock()
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return fn(h.store.data)
}

func (s *Store) base() handle { return handle{store: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{h: s.base()} }

// Products devuelve el repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{h: s.base()} }

// PaymentMethods devuelve el repositorio de métodos de pago.
func (s *Store) PaymentMethods() *PaymentMethodRepo { return &PaymentMethodRepo{h: s.base()} }

// Sales devuelve el repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{h: s.base()} }

// RunSale ejecuta fn sobre una copia del estado; solo si fn y el commit terminan sin error
// la copia reemplaza al estado visible. Las transacciones se ejecutan de una en una.
func (s *Store) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentMethodRepository,
	saleRepo repository.SaleRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	s.mu.Lock()
	snap := s.data.clone()
	s.mu.Unlock()

	h := handle{store: s, tx: snap}
	if err := fn(&ProductRepo{h: h}, &PaymentMethodRepo{h: h}, &SaleRepo{h: h}); err != nil {
		return err
	}
	if err := s.fault(OpCommit); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	s.mu.Lock()
	s.data = snap
	s.mu.Unlock()
	return nil
}

func sortedProductIDs(m map[int64]*entity.Product) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
