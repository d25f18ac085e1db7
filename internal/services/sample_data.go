package services

import (
	"fmt"
	"log/slog"
	"time"

	"ecodin/internal/models"
	"ecodin/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

const (
	sampleUserEmail    = "demo@ecodin.dev"
	sampleUserPassword = "demo-password-123"
)

// SampleDataService seeds a demo user with a realistic transaction history
// for local development. It is wired in only when sample data seeding is
// enabled and never in production.
type SampleDataService struct {
	userRepo        repositories.UserRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	passwordService PasswordServiceInterface
	logger          *slog.Logger
}

func NewSampleDataService(
	userRepo repositories.UserRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	passwordService PasswordServiceInterface,
	logger *slog.Logger,
) *SampleDataService {
	return &SampleDataService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		passwordService: passwordService,
		logger:          logger,
	}
}

// Seed creates the demo user and transaction history. Idempotent: if the
// demo user already exists nothing is written.
func (s *SampleDataService) Seed() error {
	if existing, err := s.userRepo.GetByEmail(sampleUserEmail); err == nil && existing != nil {
		s.logger.Debug("sample data already seeded", "email", sampleUserEmail)
		return nil
	}

	hash, err := s.passwordService.HashPassword(sampleUserPassword)
	if err != nil {
		return fmt.Errorf("failed to hash sample user password: %w", err)
	}

	user := &models.User{
		Email:        sampleUserEmail,
		PasswordHash: hash,
		DisplayName:  "Usuário Demo",
		SavingsGoal:  decimal.NewFromInt(1000),
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create sample user: %w", err)
	}

	transactions := s.buildTransactions()
	for _, transaction := range transactions {
		transaction.UserID = user.ID
		if err := s.transactionRepo.Create(transaction); err != nil {
			return fmt.Errorf("failed to create sample transaction %q: %w", transaction.Name, err)
		}
	}

	s.logger.Info("sample data seeded",
		"email", sampleUserEmail,
		"transactions", len(transactions))

	return nil
}

// buildTransactions returns the fixed starter entries plus a few months of
// randomized expense history.
func (s *SampleDataService) buildTransactions() []*models.Transaction {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	transactions := []*models.Transaction{
		{
			Type:     models.TransactionTypeIncome,
			Name:     "Salário",
			Amount:   decimal.NewFromInt(5000),
			Category: models.CategoryIncome,
			Date:     monthStart,
		},
		{
			Type:     models.TransactionTypeExpense,
			Name:     "Aluguel",
			Amount:   decimal.NewFromInt(1500),
			Category: models.CategoryHousing,
			Date:     monthStart.AddDate(0, 0, 4),
		},
	}

	expenseNames := map[string][]string{
		models.CategoryFood:        {"Supermercado", "Restaurante", "Padaria"},
		models.CategoryTransport:   {"Combustível", "Transporte público", "Estacionamento"},
		models.CategoryHealth:      {"Farmácia", "Consulta médica"},
		models.CategoryEducation:   {"Curso online", "Livros"},
		models.CategoryLeisure:     {"Cinema", "Streaming", "Viagem de fim de semana"},
		models.CategoryInvestments: {"Aporte mensal"},
		models.CategoryOther:       {"Presente", "Manutenção"},
	}

	for monthsBack := 1; monthsBack <= 3; monthsBack++ {
		base := monthStart.AddDate(0, -monthsBack, 0)

		transactions = append(transactions, &models.Transaction{
			Type:     models.TransactionTypeIncome,
			Name:     "Salário",
			Amount:   decimal.NewFromInt(5000),
			Category: models.CategoryIncome,
			Date:     base,
		})

		for category, names := range expenseNames {
			count := gofakeit.Number(1, 2)
			for i := 0; i < count; i++ {
				transactions = append(transactions, &models.Transaction{
					Type:     models.TransactionTypeExpense,
					Name:     names[gofakeit.Number(0, len(names)-1)],
					Amount:   decimal.NewFromFloat(gofakeit.Price(20, 800)),
					Category: category,
					Date:     base.AddDate(0, 0, gofakeit.Number(1, 27)),
				})
			}
		}
	}

	return transactions
}
