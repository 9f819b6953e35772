package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wicaksn/gostore/internal/domain"
)

// fakeStore is an in-memory Store used by the service tests. Reads
// return copies, the way rows scanned from the database would, so
// mutations only land through explicit writes.
type fakeStore struct {
	users    *fakeUserStore
	products *fakeProductStore
	orders   *fakeOrderStore
	payments *fakePaymentStore
	reports  *fakeReportStore
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    &fakeUserStore{data: map[uuid.UUID]domain.User{}},
		products: &fakeProductStore{data: map[uuid.UUID]domain.Product{}},
		orders:   &fakeOrderStore{data: map[uuid.UUID]domain.Order{}},
		payments: &fakePaymentStore{data: map[uuid.UUID]domain.Payment{}},
		reports:  &fakeReportStore{},
	}
}

func (s *fakeStore) Users() UserStore       { return s.users }
func (s *fakeStore) Products() ProductStore { return s.products }
func (s *fakeStore) Orders() OrderStore     { return s.orders }
func (s *fakeStore) Payments() PaymentStore { return s.payments }
func (s *fakeStore) Reports() ReportStore   { return s.reports }

func (s *fakeStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	return fn(s)
}

// seed helpers

func (s *fakeStore) seedUser(email string) domain.User {
	u := domain.User{ID: uuid.New(), Email: email, FirstName: "Test", LastName: "User"}
	s.users.data[u.ID] = u
	return u
}

func (s *fakeStore) seedProduct(name string, price int64, stock int) domain.Product {
	p := domain.Product{
		ID:    uuid.New(),
		SKU:   fmt.Sprintf("SKU-%s", name),
		Name:  name,
		Price: decimal.NewFromInt(price),
		Stock: stock,
	}
	s.products.data[p.ID] = p
	return p
}

type fakeUserStore struct {
	data map[uuid.UUID]domain.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.data[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.data[id]
	if !ok {
		return nil, fmt.Errorf("table:users: %w", pgx.ErrNoRows)
	}
	return &u, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.data))
	for _, u := range f.data {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.data[user.ID]; !ok {
		return fmt.Errorf("table:users: %w", pgx.ErrNoRows)
	}
	f.data[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.data[id]; !ok {
		return fmt.Errorf("table:users: %w", pgx.ErrNoRows)
	}
	delete(f.data, id)
	return nil
}

type fakeProductStore struct {
	data map[uuid.UUID]domain.Product
}

func (f *fakeProductStore) Create(ctx context.Context, product *domain.Product) error {
	f.data[product.ID] = *product
	return nil
}

func (f *fakeProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, ok := f.data[id]
	if !ok {
		return nil, fmt.Errorf("table:products: %w", pgx.ErrNoRows)
	}
	return &p, nil
}

func (f *fakeProductStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProductStore) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.data))
	for _, p := range f.data {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductStore) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := f.data[product.ID]; !ok {
		return fmt.Errorf("table:products: %w", pgx.ErrNoRows)
	}
	f.data[product.ID] = *product
	return nil
}

func (f *fakeProductStore) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	p, ok := f.data[id]
	if !ok {
		return fmt.Errorf("table:products: %w", pgx.ErrNoRows)
	}
	p.Stock += delta
	f.data[id] = p
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.data[id]; !ok {
		return fmt.Errorf("table:products: %w", pgx.ErrNoRows)
	}
	delete(f.data, id)
	return nil
}

type fakeOrderStore struct {
	data map[uuid.UUID]domain.Order
}

func copyOrder(o domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func (f *fakeOrderStore) Create(ctx context.Context, order *domain.Order) error {
	f.data[order.ID] = copyOrder(*order)
	return nil
}

func (f *fakeOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, ok := f.data[id]
	if !ok {
		return nil, fmt.Errorf("table:orders: %w", pgx.ErrNoRows)
	}
	o = copyOrder(o)
	return &o, nil
}

func (f *fakeOrderStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrderStore) FindCartByUser(ctx context.Context, userID uuid.UUID) (*domain.Order, error) {
	for _, o := range f.data {
		if o.UserID == userID && o.Status == domain.StatusCart {
			o = copyOrder(o)
			return &o, nil
		}
	}
	return nil, fmt.Errorf("table:orders: %w", pgx.ErrNoRows)
}

func (f *fakeOrderStore) FindCartByUserForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Order, error) {
	return f.FindCartByUser(ctx, userID)
}

func (f *fakeOrderStore) List(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(f.data))
	for _, o := range f.data {
		out = append(out, copyOrder(o))
	}
	return out, nil
}

func (f *fakeOrderStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.data {
		if o.UserID == userID {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (f *fakeOrderStore) SaveItems(ctx context.Context, order *domain.Order) error {
	if _, ok := f.data[order.ID]; !ok {
		return fmt.Errorf("table:orders: %w", pgx.ErrNoRows)
	}
	f.data[order.ID] = copyOrder(*order)
	return nil
}

func (f *fakeOrderStore) UpdateStatusAndTotal(ctx context.Context, order *domain.Order) error {
	stored, ok := f.data[order.ID]
	if !ok {
		return fmt.Errorf("table:orders: %w", pgx.ErrNoRows)
	}
	stored.Status = order.Status
	stored.Total = order.Total
	f.data[order.ID] = stored
	return nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.data[id]; !ok {
		return fmt.Errorf("table:orders: %w", pgx.ErrNoRows)
	}
	delete(f.data, id)
	return nil
}

type fakePaymentStore struct {
	data map[uuid.UUID]domain.Payment
}

func (f *fakePaymentStore) Create(ctx context.Context, payment *domain.Payment) error {
	f.data[payment.OrderID] = *payment
	return nil
}

func (f *fakePaymentStore) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error) {
	p, ok := f.data[orderID]
	if !ok {
		return nil, fmt.Errorf("table:payments: %w", pgx.ErrNoRows)
	}
	return &p, nil
}

type fakeReportStore struct {
	monthlySales []domain.MonthlySales
	boardStats   *domain.BoardStats
	topProducts  []domain.TopProduct
	lowStock     []domain.LowStockProduct
	topSpenders  []domain.TopSpender

	lowStockThreshold int
}

func (f *fakeReportStore) MonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	return f.monthlySales, nil
}

func (f *fakeReportStore) BoardStats(ctx context.Context) (*domain.BoardStats, error) {
	return f.boardStats, nil
}

func (f *fakeReportStore) TopProducts(ctx context.Context) ([]domain.TopProduct, error) {
	return f.topProducts, nil
}

func (f *fakeReportStore) LowStock(ctx context.Context, threshold int) ([]domain.LowStockProduct, error) {
	f.lowStockThreshold = threshold
	return f.lowStock, nil
}

func (f *fakeReportStore) TopSpenders(ctx context.Context) ([]domain.TopSpender, error) {
	return f.topSpenders, nil
}

// fakeNotifier records enqueued emails.
type fakeNotifier struct {
	confirmations []uuid.UUID
	receipts      []uuid.UUID
	failWith      error
}

func (f *fakeNotifier) EnqueueOrderConfirmation(to, name string, orderID uuid.UUID, total decimal.Decimal) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.confirmations = append(f.confirmations, orderID)
	return nil
}

func (f *fakeNotifier) EnqueuePaymentReceipt(to, name string, orderID uuid.UUID, amount decimal.Decimal) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.receipts = append(f.receipts, orderID)
	return nil
}
