package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razao-dev/razao/internal/auditlog"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runCLI(t, "init", "-C", dir, "--name", "Comercial Kianda Lda")
	require.NoError(t, err)
	return dir
}

func TestInitCreatesStructure(t *testing.T) {
	dir := initProject(t)

	for _, d := range []string{
		"accounts",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	data, err := os.ReadFile(filepath.Join(dir, "razao.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Comercial Kianda Lda")
	assert.Contains(t, string(data), "currency: AOA")

	_, err = os.Stat(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "razao.db"))
	assert.NoError(t, err)

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), "*.db")
}

func TestInitRequiresName(t *testing.T) {
	_, err := runCLI(t, "init", "-C", t.TempDir())
	assert.Error(t, err)
}

func TestAccountsList(t *testing.T) {
	dir := initProject(t)

	out, err := runCLI(t, "accounts", "list", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "41")
	assert.Contains(t, out, "Caixa")
	assert.Contains(t, out, "Salários")
}

func TestAccountsAdd(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "accounts", "add", "-C", dir,
		"--code", "43.2", "--name", "BFA Conta Corrente", "--class", "Activo")
	require.NoError(t, err)

	out, err := runCLI(t, "accounts", "list", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "43.2")
	assert.Contains(t, out, "BFA Conta Corrente")
}

func TestPostAndList(t *testing.T) {
	dir := initProject(t)

	out, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-28", "--desc", "Salários de Janeiro",
		"--debit", "63.1=80000", "--credit", "43.1=80000")
	require.NoError(t, err)
	assert.Contains(t, out, "Posted entry 2025-01-001")

	out, err = runCLI(t, "entries", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "2025-01-001")
	assert.Contains(t, out, "Salários de Janeiro")
	assert.Contains(t, out, "80000.00")

	// The posting lands in the audit log.
	audit, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, audit, 1)
	assert.Equal(t, "post", audit[0].Action)
	assert.Equal(t, "2025-01-001", audit[0].EntryNumber)
}

func TestPostRejectsUnbalanced(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-28", "--desc", "Lançamento errado",
		"--debit", "63.1=100", "--credit", "43.1=90")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debits and credits must be equal")

	// Nothing was written.
	out, err := runCLI(t, "entries", "-C", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "2025-01")
}

func TestEntriesAccountFilter(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-10", "--desc", "Venda a dinheiro",
		"--debit", "41=5000", "--credit", "71=5000")
	require.NoError(t, err)
	_, err = runCLI(t, "post", "-C", dir,
		"--date", "2025-01-28", "--desc", "Salários de Janeiro",
		"--debit", "63.1=80000", "--credit", "43.1=80000")
	require.NoError(t, err)

	out, err := runCLI(t, "entries", "-C", dir, "--account", "41")
	require.NoError(t, err)
	assert.Contains(t, out, "Venda a dinheiro")
	assert.NotContains(t, out, "Salários de Janeiro")
}

func TestReportTrialBalance(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-28", "--desc", "Salários de Janeiro",
		"--debit", "63.1=80000", "--credit", "43.1=80000")
	require.NoError(t, err)

	out, err := runCLI(t, "report", "trial-balance", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "63.1")
	assert.Contains(t, out, "43.1")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "Kz")
}

func TestReportBalanceSheet(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-05", "--desc", "Capital inicial",
		"--debit", "43.1=500000", "--credit", "51=500000")
	require.NoError(t, err)

	out, err := runCLI(t, "report", "balance-sheet", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ASSETS")
	assert.Contains(t, out, "LIABILITIES")
	assert.Contains(t, out, "EQUITY")
	assert.Contains(t, out, "Total assets")
}

func TestReportIncome(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-10", "--desc", "Venda a dinheiro",
		"--debit", "41=5000", "--credit", "71=5000")
	require.NoError(t, err)

	out, err := runCLI(t, "report", "income", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "REVENUE")
	assert.Contains(t, out, "Vendas")
	assert.Contains(t, out, "NET INCOME")
}

func TestReportCashFlow(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-05", "--desc", "Capital inicial",
		"--debit", "43.1=500000", "--credit", "51=500000")
	require.NoError(t, err)
	_, err = runCLI(t, "post", "-C", dir,
		"--date", "2025-01-28", "--desc", "Salários de Janeiro",
		"--debit", "63.1=80000", "--credit", "43.1=80000")
	require.NoError(t, err)

	out, err := runCLI(t, "report", "cash-flow", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "OPERATING")
	assert.Contains(t, out, "FINANCING")
	assert.Contains(t, out, "capital contribution")
	assert.Contains(t, out, "salary payment")
	assert.Contains(t, out, "NET CASH FLOW")
}

func TestReportLedger(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-05", "--desc", "Capital inicial",
		"--debit", "43.1=500000", "--credit", "51=500000")
	require.NoError(t, err)

	out, err := runCLI(t, "report", "ledger", "43.1", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "BALANCE")
	assert.Contains(t, out, "Capital inicial")

	_, err = runCLI(t, "report", "ledger", "99", "-C", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account")
}

func TestActivityLabels(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "post", "-C", dir,
		"--date", "2025-01-28", "--desc", "Salários de Janeiro",
		"--debit", "63.1=80000", "--credit", "43.1=80000")
	require.NoError(t, err)

	out, err := runCLI(t, "activity", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "salary payment")
	assert.Contains(t, out, "2025-01-001")
}

func TestImportStatement(t *testing.T) {
	dir := initProject(t)

	statement := "Data;Descrição;Montante;Referência;Categoria\n" +
		"28-01-2025;Venda de mercadorias;150000,00;FT-2025-17;Vendas\n" +
		"30-01-2025;Pagamento salários;-80000,50;;Salários\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "import", "extracto-jan.csv"), []byte(statement), 0o644))

	out, err := runCLI(t, "import", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "extracto-jan.csv: 2 entries posted")

	// The file moves to processed.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "extracto-jan.csv"))
	assert.NoError(t, err)

	out, err = runCLI(t, "entries", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Venda de mercadorias")
	assert.Contains(t, out, "FT-2025-17")
	assert.Contains(t, out, "Pagamento salários")

	// An inflow debits the bank account.
	out, err = runCLI(t, "entries", "-C", dir, "--account", "43.1")
	require.NoError(t, err)
	assert.Contains(t, out, "Venda de mercadorias")
	assert.Contains(t, out, "Pagamento salários")
}

func TestImportUnknownCategory(t *testing.T) {
	dir := initProject(t)

	statement := "Data;Descrição;Montante;Referência;Categoria\n" +
		"28-01-2025;Transferência;1000,00;;Misterioso\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "import", "extracto.csv"), []byte(statement), 0o644))

	_, err := runCLI(t, "import", "-C", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no account mapped for category")
}

func TestImportNoFiles(t *testing.T) {
	dir := initProject(t)

	out, err := runCLI(t, "import", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "no statement files to import")
}
