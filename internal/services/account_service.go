package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"travo/internal/models/domain_models"
	"travo/internal/models/request_models"
	"travo/internal/models/response_models"
	"travo/internal/repositories"
	"travo/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error)
	SignUp(ctx context.Context, req request_models.SignUpRequest) (response_models.LoginResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return response_models.LoginResponse{}, err
	}
	if account == nil {
		return response_models.LoginResponse{}, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Name)
	if err != nil {
		log.Printf("Failed to sign token for %s: %v", account.Email, err)
		return response_models.LoginResponse{}, err
	}

	return response_models.LoginResponse{
		Token: token,
		User:  toUserProfile(account),
	}, nil
}

func (s *AccountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (response_models.LoginResponse, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return response_models.LoginResponse{}, err
	}
	if existing != nil {
		return response_models.LoginResponse{}, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return response_models.LoginResponse{}, err
	}

	account := &domain_models.Account{
		ID:           uuid.New().String(),
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return response_models.LoginResponse{}, err
	}

	token, err := utils.CreateToken(account.ID, account.Name)
	if err != nil {
		return response_models.LoginResponse{}, err
	}

	return response_models.LoginResponse{
		Token: token,
		User:  toUserProfile(account),
	}, nil
}

func toUserProfile(account *domain_models.Account) response_models.UserProfile {
	return response_models.UserProfile{
		ID:     account.ID,
		Name:   account.Name,
		Email:  account.Email,
		Avatar: account.Avatar,
	}
}
