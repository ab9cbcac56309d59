package models

import "strings"

// Estatisticas são os contadores de resumo exibidos no painel, derivados
// localmente da última lista carregada (nunca de uma nova consulta).
type Estatisticas struct {
	Total          int `json:"total"`
	PendentesEnvio int `json:"pendentesEnvio"`
	Concluidos     int `json:"concluidos"`
}

// CalcularEstatisticas computa os contadores sobre a lista informada:
// pendentes de envio são os registros com enviadoDescricao diferente de "sim"
// (comparação sem caixa); concluídos exigem "sim" nas duas descrições.
func CalcularEstatisticas(itbis []ITBI) Estatisticas {
	stats := Estatisticas{Total: len(itbis)}

	for _, itbi := range itbis {
		enviado := strings.EqualFold(itbi.EnviadoDescricao, "sim")
		solicitado := strings.EqualFold(itbi.SolicitadoDescricao, "sim")

		if !enviado {
			stats.PendentesEnvio++
		}
		if enviado && solicitado {
			stats.Concluidos++
		}
	}

	return stats
}
