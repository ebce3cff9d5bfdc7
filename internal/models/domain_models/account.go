package domain_models

type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
}
