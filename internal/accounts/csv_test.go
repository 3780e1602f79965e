package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razao-dev/razao/internal/model"
)

func TestReadAccounts(t *testing.T) {
	in := `code,name,class,description
41,Caixa,Activo,Cash on hand
63.1,Salários,Custos,
71,Vendas,Proveitos,Sales revenue
`
	accts, err := ReadAccounts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, accts, 3)

	assert.Equal(t, "41", accts[0].Code)
	assert.Equal(t, model.ClassActivo, accts[0].Class)
	assert.Equal(t, "Salários", accts[1].Name)
	assert.Equal(t, "Sales revenue", accts[2].Description)
}

func TestReadAccountsBadClass(t *testing.T) {
	in := `code,name,class,description
41,Caixa,Dinheiro,
`
	_, err := ReadAccounts(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadAccountsEmpty(t *testing.T) {
	accts, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, accts)
}

func TestWriteReadRoundTrip(t *testing.T) {
	want := []model.Account{
		{Code: "43", Name: "Depósitos à Ordem", Class: model.ClassActivo, Description: "Bank"},
		{Code: "63.1", Name: "Salários", Class: model.ClassCustos},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, want))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUnmarshalAccountFieldCount(t *testing.T) {
	_, err := UnmarshalAccount([]string{"41", "Caixa"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4 fields")
}
