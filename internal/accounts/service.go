package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/razao-dev/razao/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewService creates a Service from a slice of accounts. Account codes
// must be unique and classes valid.
func NewService(accounts []model.Account) (*Service, error) {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		if a.Code == "" {
			return nil, fmt.Errorf("account %q has empty code", a.Name)
		}
		if !a.Class.Valid() {
			return nil, fmt.Errorf("account %s has unknown class %q", a.Code, a.Class)
		}
		if _, dup := byCode[a.Code]; dup {
			return nil, fmt.Errorf("duplicate account code %s", a.Code)
		}
		byCode[a.Code] = a
	}
	return &Service{accounts: accounts, byCode: byCode}, nil
}

// Load reads the chart of accounts CSV at path and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts)
}

// All returns all accounts, sorted by code.
func (s *Service) All() []model.Account {
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// ByClass returns all accounts of the given class, sorted by code.
func (s *Service) ByClass(class model.AccountClass) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Class == class {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result
}

// Parent returns the account whose code is the parent prefix of code.
func (s *Service) Parent(code string) (model.Account, bool) {
	p := model.ParentCode(code)
	if p == "" {
		return model.Account{}, false
	}
	return s.Get(p)
}

// Children returns the direct sub-accounts of code, sorted by code.
func (s *Service) Children(code string) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if model.ParentCode(a.Code) == code {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result
}

// Add registers a new account and returns an updated Service. The
// receiver is not mutated.
func (s *Service) Add(a model.Account) (*Service, error) {
	if s.Exists(a.Code) {
		return nil, fmt.Errorf("account code %s already exists", a.Code)
	}
	if p := model.ParentCode(a.Code); p != "" && !s.Exists(p) {
		return nil, fmt.Errorf("parent account %s does not exist", p)
	}
	accts := make([]model.Account, 0, len(s.accounts)+1)
	accts = append(accts, s.accounts...)
	accts = append(accts, a)
	return NewService(accts)
}

// Save writes the chart of accounts to path, creating the directory if
// needed.
func (s *Service) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.All()); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

// ParseClass converts a class name to an AccountClass. Matching is
// case-insensitive on the canonical names.
func ParseClass(s string) (model.AccountClass, error) {
	for _, c := range model.Classes {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown account class %q", s)
}
