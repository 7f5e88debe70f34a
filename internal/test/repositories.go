package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	ByEmail map[string]*model.Customer
	ByUUID  map[uuid.UUID]*model.Customer
	Next    int64
	Err     error
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		ByEmail: make(map[string]*model.Customer),
		ByUUID:  make(map[uuid.UUID]*model.Customer),
		Next:    1,
	}
}

// Seed registers a customer directly, bypassing Create.
func (s *CustomerRepositoryStub) Seed(c *model.Customer) *model.Customer {
	if c.ID == 0 {
		c.ID = s.Next
		s.Next++
	}
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	s.ByEmail[c.Email] = c
	s.ByUUID[c.UUID] = c
	return c
}

func (s *CustomerRepositoryStub) Create(_ context.Context, email, passwordHash string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	c := &model.Customer{
		ID:           s.Next,
		UUID:         uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		RegisteredAt: time.Now(),
		Active:       true,
	}
	s.Next++
	s.ByEmail[email] = c
	s.ByUUID[c.UUID] = c
	return c, nil
}

func (s *CustomerRepositoryStub) GetByEmail(_ context.Context, email string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.ByEmail[email]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrCustomerNotFound
}

func (s *CustomerRepositoryStub) GetByUUID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.ByUUID[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrCustomerNotFound
}

func (s *CustomerRepositoryStub) Reactivate(_ context.Context, id int64, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	for _, c := range s.ByUUID {
		if c.ID == id {
			c.PasswordHash = passwordHash
			c.Active = true
			return nil
		}
	}
	return domainErrors.ErrCustomerNotFound
}

func (s *CustomerRepositoryStub) UpdateProfile(_ context.Context, id int64, person model.Person, zodiacSign, moonPhase string) error {
	if s.Err != nil {
		return s.Err
	}
	for _, c := range s.ByUUID {
		if c.ID == id {
			c.Person = person
			c.ZodiacSign = zodiacSign
			c.MoonPhase = moonPhase
			return nil
		}
	}
	return domainErrors.ErrCustomerNotFound
}

func (s *CustomerRepositoryStub) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	for _, c := range s.ByUUID {
		if c.ID == id {
			c.PasswordHash = passwordHash
			return nil
		}
	}
	return domainErrors.ErrCustomerNotFound
}

// AdminRepositoryStub stores admins in-memory for tests.
type AdminRepositoryStub struct {
	ByUsername map[string]*model.Admin
	Next       int64
	Err        error
}

// NewAdminRepositoryStub constructs stub repository with initialized maps.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{ByUsername: make(map[string]*model.Admin), Next: 1}
}

func (s *AdminRepositoryStub) Create(_ context.Context, username, passwordHash string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	a := &model.Admin{ID: s.Next, UUID: uuid.New(), Username: username, PasswordHash: passwordHash, Active: true}
	s.Next++
	s.ByUsername[username] = a
	return a, nil
}

func (s *AdminRepositoryStub) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if a, ok := s.ByUsername[username]; ok {
		return a, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *AdminRepositoryStub) Reactivate(_ context.Context, id int64, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	for _, a := range s.ByUsername {
		if a.ID == id {
			a.PasswordHash = passwordHash
			a.Active = true
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// AddressRepositoryStub provides controllable address persistence.
type AddressRepositoryStub struct {
	ListFn   func(context.Context, int64) ([]model.Address, error)
	CreateFn func(context.Context, *model.Address) (*model.Address, error)
	UpdateFn func(context.Context, int64, *model.Address) (*model.Address, error)
	DeleteFn func(context.Context, int64, uuid.UUID) error
}

func (s AddressRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, customerID)
	}
	return nil, nil
}

func (s AddressRepositoryStub) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, address)
	}
	address.UUID = uuid.New()
	return address, nil
}

func (s AddressRepositoryStub) Update(ctx context.Context, customerID int64, address *model.Address) (*model.Address, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, customerID, address)
	}
	return address, nil
}

func (s AddressRepositoryStub) Delete(ctx context.Context, customerID int64, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, customerID, id)
	}
	return nil
}

// ProductRepositoryStub provides controllable product persistence.
type ProductRepositoryStub struct {
	Products map[uuid.UUID]*model.Product

	CreateFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn func(context.Context, *model.Product) (*model.Product, error)
	ListFn   func(context.Context, repository.ProductFilter) ([]model.Product, error)
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[uuid.UUID]*model.Product)}
}

// Seed registers a product directly.
func (s *ProductRepositoryStub) Seed(p *model.Product) *model.Product {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	s.Products[p.UUID] = p
	return p
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	product.UUID = uuid.New()
	s.Products[product.UUID] = product
	return product, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Products[product.UUID]; !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	s.Products[product.UUID] = product
	return product, nil
}

func (s *ProductRepositoryStub) Deactivate(_ context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrProductNotFound
	}
	p.Active = false
	return nil
}

func (s *ProductRepositoryStub) GetByUUID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrProductNotFound
}

func (s *ProductRepositoryStub) GetActiveByUUID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	p, err := s.GetByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, domainErrors.ErrProductNotFound
	}
	return p, nil
}

func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (s *ProductRepositoryStub) FindByUUIDs(_ context.Context, ids []uuid.UUID) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, id := range ids {
		if p, ok := s.Products[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

// CategoryRepositoryStub provides controllable category persistence.
type CategoryRepositoryStub struct {
	Categories map[uuid.UUID]*model.Category
	Err        error
}

// NewCategoryRepositoryStub constructs stub repository with initialized maps.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{Categories: make(map[uuid.UUID]*model.Category)}
}

// Seed registers a category directly.
func (s *CategoryRepositoryStub) Seed(c *model.Category) *model.Category {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	s.Categories[c.UUID] = c
	return c
}

func (s *CategoryRepositoryStub) List(context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Category
	for _, c := range s.Categories {
		result = append(result, *c)
	}
	return result, nil
}

func (s *CategoryRepositoryStub) GetByUUID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Categories[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CartRepositoryStub stores carts in-memory for tests.
type CartRepositoryStub struct {
	Carts map[uuid.UUID]*model.Cart
	Next  int64
	Err   error

	DeleteAbandonedFn func(context.Context, time.Time) (int64, error)
}

// NewCartRepositoryStub constructs stub repository with initialized maps.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[uuid.UUID]*model.Cart), Next: 1}
}

// Seed registers a cart directly.
func (s *CartRepositoryStub) Seed(c *model.Cart) *model.Cart {
	if c.ID == 0 {
		c.ID = s.Next
		s.Next++
	}
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	s.Carts[c.UUID] = c
	return c
}

func (s *CartRepositoryStub) Create(_ context.Context, customerID *int64) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c := &model.Cart{ID: s.Next, UUID: uuid.New(), CustomerID: customerID, CreatedAt: time.Now()}
	s.Next++
	s.Carts[c.UUID] = c
	return c, nil
}

func (s *CartRepositoryStub) GetByUUID(_ context.Context, id uuid.UUID) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Carts[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrCartNotFound
}

func (s *CartRepositoryStub) GetByCustomer(_ context.Context, customerID int64) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Carts {
		if c.CustomerID != nil && *c.CustomerID == customerID {
			return c, nil
		}
	}
	return nil, domainErrors.ErrCartNotFound
}

func (s *CartRepositoryStub) AddItem(_ context.Context, cartID int64, productUUID uuid.UUID, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	cart := s.cartByID(cartID)
	if cart == nil {
		return domainErrors.ErrCartNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductUUID == productUUID {
			cart.Items[i].Quantity += quantity
			return nil
		}
	}
	cart.Items = append(cart.Items, model.CartItem{
		UUID:        uuid.New(),
		CartID:      cartID,
		ProductUUID: productUUID,
		Quantity:    quantity,
	})
	return nil
}

func (s *CartRepositoryStub) SetItemQuantity(_ context.Context, cartID int64, productUUID uuid.UUID, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	cart := s.cartByID(cartID)
	if cart == nil {
		return domainErrors.ErrCartNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductUUID == productUUID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return domainErrors.ErrProductNotInCart
}

func (s *CartRepositoryStub) RemoveItem(_ context.Context, cartID int64, productUUID uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	cart := s.cartByID(cartID)
	if cart == nil {
		return domainErrors.ErrCartNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductUUID == productUUID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrProductNotInCart
}

func (s *CartRepositoryStub) ClearItems(_ context.Context, cartID int64) error {
	if s.Err != nil {
		return s.Err
	}
	if cart := s.cartByID(cartID); cart != nil {
		cart.Items = nil
	}
	return nil
}

func (s *CartRepositoryStub) MergeInto(ctx context.Context, sourceID, targetID int64) error {
	if s.Err != nil {
		return s.Err
	}
	source := s.cartByID(sourceID)
	target := s.cartByID(targetID)
	if source == nil || target == nil {
		return domainErrors.ErrCartNotFound
	}
	for _, item := range source.Items {
		_ = s.AddItem(ctx, targetID, item.ProductUUID, item.Quantity)
	}
	delete(s.Carts, source.UUID)
	return nil
}

func (s *CartRepositoryStub) DeleteAbandoned(ctx context.Context, before time.Time) (int64, error) {
	if s.DeleteAbandonedFn != nil {
		return s.DeleteAbandonedFn(ctx, before)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	var removed int64
	for id, c := range s.Carts {
		if c.CustomerID == nil && c.CreatedAt.Before(before) {
			delete(s.Carts, id)
			removed++
		}
	}
	return removed, nil
}

func (s *CartRepositoryStub) cartByID(id int64) *model.Cart {
	for _, c := range s.Carts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	Orders map[uuid.UUID]*model.Order
	Next   int64
	Err    error

	CreateFn func(context.Context, *model.Order) (*model.Order, error)
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[uuid.UUID]*model.Order), Next: 1}
}

// Seed registers an order directly.
func (s *OrderRepositoryStub) Seed(o *model.Order) *model.Order {
	if o.ID == 0 {
		o.ID = s.Next
		s.Next++
	}
	if o.UUID == uuid.Nil {
		o.UUID = uuid.New()
	}
	s.Orders[o.UUID] = o
	return o
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	order.ID = s.Next
	order.UUID = uuid.New()
	order.CreatedAt = time.Now()
	s.Next++
	s.Orders[order.UUID] = order
	return order, nil
}

func (s *OrderRepositoryStub) GetByUUID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if o, ok := s.Orders[id]; ok {
		return o, nil
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) ListByCustomer(_ context.Context, customerID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListActive(context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if !o.Status.Terminal() {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) UpdateStatus(_ context.Context, orderID int64, status model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	for _, o := range s.Orders {
		if o.ID == orderID {
			o.Status = status
			return nil
		}
	}
	return domainErrors.ErrOrderNotFound
}

// PaymentRepositoryStub stores payments in-memory for tests.
type PaymentRepositoryStub struct {
	Payments map[uuid.UUID]*model.Payment
	Next     int64
	Err      error

	FinalizeErr error
}

// NewPaymentRepositoryStub constructs stub repository with initialized maps.
func NewPaymentRepositoryStub() *PaymentRepositoryStub {
	return &PaymentRepositoryStub{Payments: make(map[uuid.UUID]*model.Payment), Next: 1}
}

func (s *PaymentRepositoryStub) Create(_ context.Context, payment *model.Payment) (*model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	payment.ID = s.Next
	payment.UUID = uuid.New()
	s.Next++
	s.Payments[payment.UUID] = payment
	return payment, nil
}

func (s *PaymentRepositoryStub) Finalize(_ context.Context, paymentID int64, status model.PaymentStatus, operationNumber string) error {
	if s.FinalizeErr != nil {
		return s.FinalizeErr
	}
	for _, p := range s.Payments {
		if p.ID == paymentID {
			p.Status = status
			p.OperationNumber = operationNumber
			return nil
		}
	}
	return domainErrors.ErrPaymentNotFound
}

func (s *PaymentRepositoryStub) GetByUUID(_ context.Context, id uuid.UUID) (*model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Payments[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrPaymentNotFound
}

// ReceiptRepositoryStub stores receipts in-memory for tests.
type ReceiptRepositoryStub struct {
	Receipts []*model.Receipt
	Next     int64
	Err      error
}

// NewReceiptRepositoryStub constructs stub repository.
func NewReceiptRepositoryStub() *ReceiptRepositoryStub {
	return &ReceiptRepositoryStub{Next: 1}
}

func (s *ReceiptRepositoryStub) Create(_ context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	receipt.ID = s.Next
	receipt.UUID = uuid.New()
	s.Next++
	s.Receipts = append(s.Receipts, receipt)
	return receipt, nil
}
