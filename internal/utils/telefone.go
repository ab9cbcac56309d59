package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrTelefoneInvalido indica telefone que não reduz a 10 ou 11 dígitos.
var ErrTelefoneInvalido = errors.New("telefone deve ter DDD e 10 ou 11 dígitos")

// LimparTelefone remove tudo que não é dígito.
// Exemplo: "(11) 98765-4321" -> "11987654321"
func LimparTelefone(telefone string) string {
	var b strings.Builder
	for _, r := range telefone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidarTelefone valida o telefone após remover a máscara: vazio é aceito
// (campo opcional); caso contrário exige 10 ou 11 dígitos (fixo ou celular
// com DDD). Retorna os dígitos limpos.
func ValidarTelefone(telefone string) (string, error) {
	digitos := LimparTelefone(telefone)
	if digitos == "" {
		return "", nil
	}
	if len(digitos) < 10 || len(digitos) > 11 {
		return "", ErrTelefoneInvalido
	}
	return digitos, nil
}

// FormatarTelefone aplica a máscara brasileira sobre uma string de dígitos:
// 10 dígitos -> "(DD) DDDD-DDDD", 11 dígitos -> "(DD) DDDDD-DDDD".
// Entradas parciais recebem máscara progressiva, como no campo do formulário.
func FormatarTelefone(telefone string) string {
	digitos := LimparTelefone(telefone)
	if len(digitos) > 11 {
		digitos = digitos[:11]
	}

	switch {
	case len(digitos) <= 2:
		return digitos
	case len(digitos) <= 7:
		return fmt.Sprintf("(%s) %s", digitos[:2], digitos[2:])
	case len(digitos) <= 10:
		return fmt.Sprintf("(%s) %s-%s", digitos[:2], digitos[2:6], digitos[6:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digitos[:2], digitos[2:7], digitos[7:])
	}
}
