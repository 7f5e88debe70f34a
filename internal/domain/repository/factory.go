package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	Admins() AdminRepository
	Addresses() AddressRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Carts() CartRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	Receipts() ReceiptRepository
}
