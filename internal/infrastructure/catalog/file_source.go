package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bibbank/eligibility-service/internal/domain/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrEmptyCatalog is returned when a catalog document lists no products.
var ErrEmptyCatalog = errors.New("catalog defines no products")

type document struct {
	CurrencySymbol  string                  `yaml:"currency_symbol"`
	Products        []productDoc            `yaml:"products"`
	ValidationRules map[string]ruleDocument `yaml:"validation_rules"`
}

type productDoc struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Purposes     []string `yaml:"purposes"`
	InterestRate struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	} `yaml:"interest_rate"`
	MinAmount float64 `yaml:"min_amount"`
	MaxAmount float64 `yaml:"max_amount"`
	MinTerm   int     `yaml:"min_term"`
	MaxTerm   int     `yaml:"max_term"`
}

type ruleDocument struct {
	Min          *float64 `yaml:"min"`
	Max          *float64 `yaml:"max"`
	ErrorMessage string   `yaml:"error_message"`
	Options      []string `yaml:"options"`
	Required     bool     `yaml:"required"`
}

// FileSource reads reference data from a YAML document. It implements
// port.ReferenceDataSource.
type FileSource struct {
	path string
}

// NewFileSource returns a source for the document at path. An empty path
// selects the catalog compiled into the binary.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the document.
func (s *FileSource) Load(_ context.Context) (model.Catalog, model.ValidationRules, error) {
	data := defaultCatalog
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return model.Catalog{}, model.ValidationRules{}, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a catalog document. Unknown keys, missing rules and invalid
// products are rejected.
func Parse(data []byte) (model.Catalog, model.ValidationRules, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return model.Catalog{}, model.ValidationRules{}, fmt.Errorf("decode catalog: %w", err)
	}

	if len(doc.Products) == 0 {
		return model.Catalog{}, model.ValidationRules{}, ErrEmptyCatalog
	}

	products := make([]model.LoanProduct, 0, len(doc.Products))
	for i, p := range doc.Products {
		product, err := model.NewLoanProduct(
			p.ID, p.Name, p.Description,
			p.MinAmount, p.MaxAmount,
			p.MinTerm, p.MaxTerm,
			p.InterestRate.Min, p.InterestRate.Max,
			p.Purposes,
		)
		if err != nil {
			return model.Catalog{}, model.ValidationRules{}, fmt.Errorf("product %d: %w", i, err)
		}
		products = append(products, product)
	}

	catalog, err := model.NewCatalog(products...)
	if err != nil {
		return model.Catalog{}, model.ValidationRules{}, err
	}

	rules := model.ValidationRules{CurrencySymbol: doc.CurrencySymbol}
	for key, r := range doc.ValidationRules {
		err := rules.Set(key, model.ValidationRule{
			Required:     r.Required,
			Min:          r.Min,
			Max:          r.Max,
			Options:      r.Options,
			ErrorMessage: r.ErrorMessage,
		})
		if err != nil {
			return model.Catalog{}, model.ValidationRules{}, err
		}
	}
	for _, key := range model.RuleKeys {
		if _, ok := doc.ValidationRules[key]; !ok {
			return model.Catalog{}, model.ValidationRules{}, fmt.Errorf("missing validation rule %q", key)
		}
	}

	return catalog, rules, nil
}
