package services

import (
	"math/rand"
	"time"

	"ledgerview/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

type transactionGenerator struct {
	accounts   []*models.Account
	categories []*models.Category
	rng        *rand.Rand
	faker      *gofakeit.Faker
}

const (
	generatorMinAmount = 100     // one unit in minor units
	generatorMaxAmount = 2500000 // 25k units
	generatorMaxGap    = 18 * 3600
)

// TransactionGeneratorInterface produces plausible transaction pages for
// tests and demo sources.
type TransactionGeneratorInterface interface {
	GeneratePage(count int, newestTime int64, utcOffsetMinutes int) *models.TransactionPageResult
}

// NewTransactionGenerator creates a generator drawing accounts and categories
// from the given pools. seed fixes the sequence; pass 0 for a random one.
func NewTransactionGenerator(accounts []*models.Account, categories []*models.Category, seed int64) TransactionGeneratorInterface {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &transactionGenerator{
		accounts:   accounts,
		categories: categories,
		rng:        rand.New(rand.NewSource(seed)),
		faker:      gofakeit.New(uint64(seed)),
	}
}

// GeneratePage produces count records ordered newest first, starting at
// newestTime and walking backwards by random gaps. The continuation cursor
// points just below the oldest generated record, in milliseconds.
func (g *transactionGenerator) GeneratePage(count int, newestTime int64, utcOffsetMinutes int) *models.TransactionPageResult {
	items := make([]*models.Transaction, 0, count)
	eventTime := newestTime

	for i := 0; i < count; i++ {
		txn := g.generateTransaction(eventTime, utcOffsetMinutes)
		items = append(items, txn)

		eventTime -= int64(g.rng.Intn(generatorMaxGap) + 60)
	}

	cursor := int64(0)
	if len(items) > 0 {
		cursor = (items[len(items)-1].Time - 1) * 1000
	}

	return &models.TransactionPageResult{
		Items:              items,
		NextTimeSequenceId: cursor,
	}
}

func (g *transactionGenerator) generateTransaction(eventTime int64, utcOffsetMinutes int) *models.Transaction {
	txn := &models.Transaction{
		Id:        uuid.New().String(),
		Time:      eventTime,
		UtcOffset: utcOffsetMinutes,
		Comment:   g.faker.Sentence(4),
	}

	switch g.rng.Intn(10) {
	case 0, 1, 2:
		txn.Type = models.TransactionTypeIncome
	case 3:
		txn.Type = models.TransactionTypeTransfer
	default:
		txn.Type = models.TransactionTypeExpense
	}

	source := g.pickAccount(nil)
	txn.SourceAccountId = source.Id
	txn.SourceAmount = int64(g.rng.Intn(generatorMaxAmount-generatorMinAmount) + generatorMinAmount)

	if txn.Type == models.TransactionTypeTransfer {
		destination := g.pickAccount(source)
		txn.DestinationAccountId = destination.Id
		txn.DestinationAmount = txn.SourceAmount
	}

	if category := g.pickCategory(txn.Type); category != nil {
		txn.CategoryId = category.Id
	}

	return txn
}

func (g *transactionGenerator) pickAccount(exclude *models.Account) *models.Account {
	if len(g.accounts) == 0 {
		return &models.Account{Id: uuid.New().String(), Name: g.faker.Company(), Currency: "USD"}
	}

	for {
		account := g.accounts[g.rng.Intn(len(g.accounts))]
		if exclude == nil || account.Id != exclude.Id || len(g.accounts) == 1 {
			return account
		}
	}
}

func (g *transactionGenerator) pickCategory(transactionType models.TransactionType) *models.Category {
	wanted := models.CategoryTypeExpense
	switch transactionType {
	case models.TransactionTypeIncome:
		wanted = models.CategoryTypeIncome
	case models.TransactionTypeTransfer:
		wanted = models.CategoryTypeTransfer
	}

	matching := make([]*models.Category, 0, len(g.categories))
	for _, category := range g.categories {
		if category.Type == wanted {
			matching = append(matching, category)
		}
	}

	if len(matching) == 0 {
		return nil
	}

	return matching[g.rng.Intn(len(matching))]
}
