package models

import "testing"

func TestCalcularEstatisticas(t *testing.T) {
	itbis := []ITBI{
		{EnviadoDescricao: "Sim", SolicitadoDescricao: "Sim"},
		{EnviadoDescricao: "sim", SolicitadoDescricao: "SIM"},
		{EnviadoDescricao: "Sim", SolicitadoDescricao: "Não"},
		{EnviadoDescricao: "Não", SolicitadoDescricao: "Sim"},
		{EnviadoDescricao: "Em Andamento", SolicitadoDescricao: "Em Andamento"},
		{EnviadoDescricao: "Desconhecido", SolicitadoDescricao: "Desconhecido"},
	}

	stats := CalcularEstatisticas(itbis)

	if stats.Total != 6 {
		t.Errorf("Total = %d; expected 6", stats.Total)
	}
	if stats.PendentesEnvio != 3 {
		t.Errorf("PendentesEnvio = %d; expected 3", stats.PendentesEnvio)
	}
	if stats.Concluidos != 2 {
		t.Errorf("Concluidos = %d; expected 2", stats.Concluidos)
	}
}

func TestCalcularEstatisticasListaVazia(t *testing.T) {
	stats := CalcularEstatisticas(nil)

	if stats.Total != 0 || stats.PendentesEnvio != 0 || stats.Concluidos != 0 {
		t.Errorf("CalcularEstatisticas(nil) = %+v; expected zeros", stats)
	}
}
