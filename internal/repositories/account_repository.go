package repositories

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"travo/internal/models/domain_models"
	"travo/pkg/utils"
)

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain_models.Account, error)
	Insert(ctx context.Context, account *domain_models.Account) error
}

// accountRepository holds demo accounts in memory. The login surface is a
// stand-in, not a real credential system.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain_models.Account // keyed by email
}

func NewAccountRepository() AccountRepository {
	repo := &accountRepository{
		accounts: make(map[string]*domain_models.Account),
	}
	repo.seed()
	return repo
}

func (r *accountRepository) seed() {
	demo := []struct {
		name, email, password, avatar string
	}{
		{"John Doe", "john@example.com", "password123", "https://randomuser.me/api/portraits/men/1.jpg"},
		{"Jane Smith", "jane@example.com", "password123", "https://randomuser.me/api/portraits/women/2.jpg"},
	}
	for _, d := range demo {
		hash, err := utils.HashPassword(d.password)
		if err != nil {
			log.Printf("Failed to hash seed password for %s: %v", d.email, err)
			continue
		}
		r.accounts[d.email] = &domain_models.Account{
			ID:           uuid.New().String(),
			Name:         d.name,
			Email:        d.email,
			PasswordHash: hash,
			Avatar:       d.avatar,
		}
	}
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*domain_models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (r *accountRepository) Insert(ctx context.Context, account *domain_models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.Email] = account
	return nil
}
