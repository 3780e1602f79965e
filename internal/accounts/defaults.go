package accounts

import "github.com/razao-dev/razao/internal/model"

// DefaultChart returns the default PGC chart of accounts for a
// labor-services company.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: "11", Name: "Meios Fixos e Investimentos", Class: model.ClassActivo, Description: "Long-term tangible assets"},
		{Code: "11.1", Name: "Equipamento Básico", Class: model.ClassActivo},
		{Code: "21", Name: "Existências", Class: model.ClassActivo, Description: "Inventory and consumables (EPI)"},
		{Code: "31", Name: "Clientes", Class: model.ClassActivo, Description: "Amounts owed by customers"},
		{Code: "31.1", Name: "Clientes — Conta Corrente", Class: model.ClassActivo},
		{Code: "32", Name: "Fornecedores", Class: model.ClassPassivo, Description: "Amounts owed to suppliers"},
		{Code: "32.1", Name: "Fornecedores — Conta Corrente", Class: model.ClassPassivo},
		{Code: "34", Name: "Estado", Class: model.ClassPassivo, Description: "Taxes and social contributions payable"},
		{Code: "36", Name: "Pessoal", Class: model.ClassPassivo, Description: "Salaries payable"},
		{Code: "37", Name: "Empréstimos", Class: model.ClassPassivo, Description: "Outstanding loan obligations"},
		{Code: "41", Name: "Caixa", Class: model.ClassActivo, Description: "Cash on hand"},
		{Code: "43", Name: "Depósitos à Ordem", Class: model.ClassActivo, Description: "Bank demand deposits"},
		{Code: "43.1", Name: "Depósitos à Ordem — Kwanzas", Class: model.ClassActivo},
		{Code: "51", Name: "Capital", Class: model.ClassCapitalProprio, Description: "Owner capital contributions"},
		{Code: "58", Name: "Resultados Transitados", Class: model.ClassCapitalProprio, Description: "Retained earnings"},
		{Code: "62", Name: "Fornecimentos e Serviços de Terceiros", Class: model.ClassCustos, Description: "Purchased supplies and services"},
		{Code: "62.1", Name: "Rendas e Alugueres", Class: model.ClassCustos},
		{Code: "63", Name: "Custos com o Pessoal", Class: model.ClassCustos, Description: "Personnel costs"},
		{Code: "63.1", Name: "Salários", Class: model.ClassCustos},
		{Code: "66", Name: "Amortizações do Exercício", Class: model.ClassCustos, Description: "Depreciation"},
		{Code: "71", Name: "Vendas", Class: model.ClassProveitos, Description: "Sales revenue"},
		{Code: "72", Name: "Prestações de Serviços", Class: model.ClassProveitos, Description: "Service revenue"},
		{Code: "88", Name: "Resultado Líquido do Exercício", Class: model.ClassResultados, Description: "Net result for the period"},
	}
}
