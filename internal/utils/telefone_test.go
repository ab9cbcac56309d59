package utils

import (
	"errors"
	"testing"
)

func TestLimparTelefone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(11) 98765-4321", "11987654321"},
		{"(21) 3456-7890", "2134567890"},
		{"11 98765 4321", "11987654321"},
		{"+55 11 98765-4321", "5511987654321"},
		{"abc", ""},
		{"", ""},
	}

	for _, test := range tests {
		result := LimparTelefone(test.input)
		if result != test.expected {
			t.Errorf("LimparTelefone(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestValidarTelefone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valido   bool
	}{
		{"", "", true},
		{"(11) 98765-4321", "11987654321", true},
		{"(21) 3456-7890", "2134567890", true},
		{"2134567890", "2134567890", true},
		{"123456789", "", false},
		{"123456789012", "", false},
		{"(11) 9876", "", false},
	}

	for _, test := range tests {
		result, err := ValidarTelefone(test.input)
		if test.valido {
			if err != nil {
				t.Errorf("ValidarTelefone(%q) retornou erro inesperado: %v", test.input, err)
			}
			if result != test.expected {
				t.Errorf("ValidarTelefone(%q) = %q; expected %q", test.input, result, test.expected)
			}
		} else {
			if !errors.Is(err, ErrTelefoneInvalido) {
				t.Errorf("ValidarTelefone(%q) deveria falhar com ErrTelefoneInvalido; err = %v", test.input, err)
			}
		}
	}
}

func TestFormatarTelefone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1", "1"},
		{"11", "11"},
		{"119", "(11) 9"},
		{"1198765", "(11) 98765"},
		{"2134567890", "(21) 3456-7890"},
		{"11987654321", "(11) 98765-4321"},
		{"119876543210000", "(11) 98765-4321"},
		{"(11)98765-4321", "(11) 98765-4321"},
	}

	for _, test := range tests {
		result := FormatarTelefone(test.input)
		if result != test.expected {
			t.Errorf("FormatarTelefone(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

// Formatar e limpar são inversos para números completos: o que o formulário
// exibe mascarado volta ao armazenamento como os mesmos dígitos.
func TestFormatarLimparIdaEVolta(t *testing.T) {
	digitos := []string{"2134567890", "11987654321"}

	for _, d := range digitos {
		mascarado := FormatarTelefone(d)
		if LimparTelefone(mascarado) != d {
			t.Errorf("LimparTelefone(FormatarTelefone(%q)) = %q; expected %q", d, LimparTelefone(mascarado), d)
		}
	}
}
