package model

// Account is a membership row. Email is the primary key. The password is
// stored and compared as-is for compatibility with existing rows; see
// DESIGN.md before changing this.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}
