package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarTexto remove acentos e converte para minúsculas, para comparação
// de busca insensível a caixa e acentuação.
// Exemplo: "José da Conceição" -> "jose da conceicao"
func NormalizarTexto(texto string) string {
	if texto == "" {
		return texto
	}

	// Remove acentos e diacríticos
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, texto)

	return strings.ToLower(normalized)
}

// ContemNormalizado informa se texto contém termo, ignorando caixa e acentos.
func ContemNormalizado(texto, termo string) bool {
	return strings.Contains(NormalizarTexto(texto), NormalizarTexto(termo))
}
