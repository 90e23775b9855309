package model

// SkinSelection maps an account to its chosen UI template code, one row per
// account.
type SkinSelection struct {
	Email string `json:"email"`
	Skin  string `json:"skin"`
}
