package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/model"
)

// BAIParser parses BAI (Banco Angolano de Investimentos) account
// statement CSV exports. Fields are semicolon-separated with comma
// decimal marks.
type BAIParser struct{}

const (
	baiDateFormat  = "02-01-2006"
	baiNumFields   = 5
	baiColDate     = 0
	baiColDesc     = 1
	baiColAmount   = 2
	baiColRef      = 3
	baiColCategory = 4
)

// Format returns the parser name.
func (p *BAIParser) Format() string { return "bai" }

// Parse reads a BAI CSV and returns BankTransactions.
func (p *BAIParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = baiNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading BAI CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := parseBAIRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseBAIRow(rec []string) (model.BankTransaction, error) {
	date, err := time.Parse(baiDateFormat, rec[baiColDate])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[baiColDate], err)
	}

	raw := strings.ReplaceAll(strings.ReplaceAll(rec[baiColAmount], " ", ""), ",", ".")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", rec[baiColAmount], err)
	}

	desc := rec[baiColDesc]
	ref := rec[baiColRef]
	if ref == "" {
		ref = makeBAIRef(date, desc)
	}

	return model.BankTransaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Reference:   ref,
		Category:    rec[baiColCategory],
	}, nil
}

// makeBAIRef creates a reference like bai_20250103_TRANSFEREN.
func makeBAIRef(date time.Time, desc string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("bai_%s_%s", date.Format("20060102"), prefix)
}
