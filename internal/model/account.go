package model

import "strings"

// AccountClass classifies accounts per the Angolan Plano Geral de
// Contabilidade (PGC).
type AccountClass string

const (
	ClassActivo         AccountClass = "Activo"
	ClassPassivo        AccountClass = "Passivo"
	ClassCapitalProprio AccountClass = "Capital Próprio"
	ClassCustos         AccountClass = "Custos"
	ClassProveitos      AccountClass = "Proveitos"
	ClassResultados     AccountClass = "Resultados"
)

// Classes lists all valid account classes.
var Classes = []AccountClass{
	ClassActivo,
	ClassPassivo,
	ClassCapitalProprio,
	ClassCustos,
	ClassProveitos,
	ClassResultados,
}

// Valid reports whether c is a known PGC class.
func (c AccountClass) Valid() bool {
	for _, k := range Classes {
		if c == k {
			return true
		}
	}
	return false
}

// Account represents a row in the chart of accounts. Codes are
// dot-delimited and hierarchical ("63" is the parent of "63.1").
type Account struct {
	Code        string
	Name        string
	Class       AccountClass
	Description string
}

// ParentCode returns the code's parent prefix, or "" for a top-level code.
// "63.1.2" -> "63.1", "63" -> "".
func ParentCode(code string) string {
	i := strings.LastIndex(code, ".")
	if i < 0 {
		return ""
	}
	return code[:i]
}

// TopCode returns the top-level segment of a code. "63.1" -> "63".
func TopCode(code string) string {
	i := strings.Index(code, ".")
	if i < 0 {
		return code
	}
	return code[:i]
}
