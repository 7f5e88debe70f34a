package model

// Person holds the identity fields shared by customers and administrators.
// Embedded by value; behavior does not vary by role.
type Person struct {
	FirstName string
	LastName  string
	Phone     string
}
