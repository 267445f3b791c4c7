package domain

import "strings"

// ItemCatalog is the fixed reference list of material item labels offered
// when a rejected material is edited.
var ItemCatalog = []string{
	"Piso",
	"Parede",
	"Teto",
	"Rodapé",
	"Soleira",
	"Peitoril",
	"Bancada",
	"Louças",
	"Metais",
	"Esquadrias",
	"Portas",
	"Ferragens",
	"Iluminação",
	"Tomadas e interruptores",
}

// CanonicalItem returns the catalog spelling of item, matched without regard
// to case or surrounding space.
func CanonicalItem(item string) (string, bool) {
	needle := strings.TrimSpace(item)
	for _, c := range ItemCatalog {
		if strings.EqualFold(c, needle) {
			return c, true
		}
	}
	return "", false
}
