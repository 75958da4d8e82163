package model

// User is a guest account. Email is unique; the credential is stored
// only as a bcrypt hash. Gender is nullable in the schema, so it is a
// pointer here.
type User struct {
	ID           uint64  // users.id
	Email        string  // users.email
	PasswordHash string  // users.password_hash
	FirstName    string  // users.first_name
	LastName     string  // users.last_name
	Phone        string  // users.phone
	DateOfBirth  string  // users.date_of_birth (DATE, YYYY-MM-DD)
	Gender       *string // users.gender (nullable: male|female|other)
}
