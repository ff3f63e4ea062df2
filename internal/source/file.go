package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk shape of an alternative fixture batch:
//
//	transactions:
//	  - id: T001
//	    date: 2025-04-17
//	    description: First payment
//	    amount: 2000
type fixtureFile struct {
	Transactions []fixtureRecord `yaml:"transactions" validate:"required,unique=ID,dive"`
}

type fixtureRecord struct {
	ID          string `yaml:"id" validate:"required"`
	Date        string `yaml:"date" validate:"required"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount" validate:"required,numeric"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseFixture decodes and validates a YAML fixture batch.
func ParseFixture(data []byte) ([]model.Transaction, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidRecord, err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, translateValidation(err)
	}

	transactions := make([]model.Transaction, 0, len(file.Transactions))
	for i, rec := range file.Transactions {
		date := model.ParseDate(rec.Date)
		if !date.Valid() {
			return nil, fmt.Errorf("%w: record %d (%s): %w %q", common.ErrInvalidRecord, i, rec.ID, common.ErrInvalidDate, rec.Date)
		}
		amount, err := decimal.NewFromString(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%s): amount: %w", common.ErrInvalidRecord, i, rec.ID, err)
		}
		transactions = append(transactions, model.Transaction{
			ID:          rec.ID,
			Date:        date,
			Description: rec.Description,
			Amount:      amount,
		})
	}

	return transactions, nil
}

func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", common.ErrInvalidRecord, err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "unique" {
			return fmt.Errorf("%w: %s", common.ErrDuplicateID, fe.Namespace())
		}
	}
	return fmt.Errorf("%w: %w", common.ErrInvalidRecord, verrs)
}

// FileLoader reads a fixture batch from a YAML file once per Load.
type FileLoader struct {
	path  string
	delay time.Duration
}

// NewFileLoader returns a loader for the fixture file at path.
func NewFileLoader(path string, delay time.Duration) *FileLoader {
	return &FileLoader{path: path, delay: delay}
}

// Load reads and validates the file, then delivers it after the configured delay.
func (l *FileLoader) Load(ctx context.Context) ([]model.Transaction, error) {
	data, err := os.ReadFile(l.path) // #nosec G304 - path comes from user config
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrLoadFailed, err)
	}

	transactions, err := ParseFixture(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrLoadFailed, l.path, err)
	}

	return NewFixtureLoader(transactions, l.delay).Load(ctx)
}
