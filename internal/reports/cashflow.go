package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/classify"
	"github.com/razao-dev/razao/internal/model"
)

// cashTopCodes are the top-level codes of cash and bank accounts. An
// entry moves cash iff its lines touch one of these hierarchies.
var cashTopCodes = map[string]bool{"41": true, "43": true}

// IsCashCode reports whether code belongs to a cash/bank hierarchy.
func IsCashCode(code string) bool {
	return cashTopCodes[model.TopCode(code)]
}

// FlowItem is one cash-moving entry in a cash-flow section.
type FlowItem struct {
	EntryNumber string
	Date        time.Time
	Description string
	Label       string          // classification label for the feed
	Amount      decimal.Decimal // signed cash movement (inflow positive)
}

// CashFlowStatement partitions cash movements into the three standard
// sections. The statement is derived strictly from movements on the
// cash/bank account hierarchies; the counterpart accounts' classes
// choose the section.
type CashFlowStatement struct {
	Operating []FlowItem
	Investing []FlowItem
	Financing []FlowItem

	NetOperating decimal.Decimal
	NetInvesting decimal.Decimal
	NetFinancing decimal.Decimal
	NetCashFlow  decimal.Decimal // Σ sections
}

// BuildCashFlow derives a cash-flow statement from journal entries.
// Entries that do not move cash are skipped.
func BuildCashFlow(chart Chart, entries []model.JournalEntry) (CashFlowStatement, error) {
	var cf CashFlowStatement

	sorted := make([]model.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Number < sorted[j].Number
	})

	for _, e := range sorted {
		cash := decimal.Zero
		for _, l := range e.Lines {
			if IsCashCode(l.AccountCode) {
				cash = cash.Add(l.Movement())
			}
		}
		if cash.IsZero() {
			continue
		}

		section, err := sectionFor(chart, e)
		if err != nil {
			return CashFlowStatement{}, err
		}

		item := FlowItem{
			EntryNumber: e.Number,
			Date:        e.Date,
			Description: e.Description,
			Label:       classify.Entry(e).Label,
			Amount:      cash,
		}

		switch section {
		case sectionInvesting:
			cf.Investing = append(cf.Investing, item)
			cf.NetInvesting = cf.NetInvesting.Add(cash)
		case sectionFinancing:
			cf.Financing = append(cf.Financing, item)
			cf.NetFinancing = cf.NetFinancing.Add(cash)
		default:
			cf.Operating = append(cf.Operating, item)
			cf.NetOperating = cf.NetOperating.Add(cash)
		}
	}

	cf.NetCashFlow = cf.NetOperating.Add(cf.NetInvesting).Add(cf.NetFinancing)
	return cf, nil
}

type section int

const (
	sectionOperating section = iota
	sectionInvesting
	sectionFinancing
)

// sectionFor picks the section from the counterpart (non-cash) lines.
// Capital and loan counterparts mean financing, fixed-asset counterparts
// investing, everything else operating.
func sectionFor(chart Chart, e model.JournalEntry) (section, error) {
	for _, l := range e.Lines {
		if IsCashCode(l.AccountCode) {
			continue
		}
		acct, ok := chart.Get(l.AccountCode)
		if !ok {
			return sectionOperating, fmt.Errorf("entry %s references unknown account %s", e.Number, l.AccountCode)
		}
		top := model.TopCode(l.AccountCode)
		if acct.Class == model.ClassCapitalProprio || top == "37" {
			return sectionFinancing, nil
		}
		if top == "11" {
			return sectionInvesting, nil
		}
	}
	return sectionOperating, nil
}
