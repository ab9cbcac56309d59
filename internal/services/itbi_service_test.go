package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/brunodias77/cartorio-app/internal/migration/schemas"
	"github.com/brunodias77/cartorio-app/internal/mocks"
	"github.com/brunodias77/cartorio-app/internal/models"
)

func novoITBIService(t *testing.T) (*ITBIService, *mocks.ArmazemEmMemoria) {
	t.Helper()
	armazem := armazemComStatus(t)
	status := NewStatusService(armazem, zap.NewNop())
	return NewITBIService(armazem, status, zap.NewNop()), armazem
}

func TestCriarITBI(t *testing.T) {
	service, _ := novoITBIService(t)
	carimbo := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	service.agora = func() time.Time { return carimbo }

	resp := service.Criar(context.Background(), "José da Conceição", "11987654321", "2025-0001")
	if !resp.Success {
		t.Fatalf("Criar falhou: %s", resp.Error)
	}
	if resp.ID == "" || resp.ID != resp.Data.ID {
		t.Errorf("ID da resposta = %q; deveria carregar o id gerado %q", resp.ID, resp.Data.ID)
	}

	itbi := resp.Data
	if itbi.NomeCliente != "José da Conceição" {
		t.Errorf("NomeCliente = %q", itbi.NomeCliente)
	}
	if itbi.TelefoneCliente == nil || *itbi.TelefoneCliente != "11987654321" {
		t.Errorf("TelefoneCliente = %v; expected 11987654321", itbi.TelefoneCliente)
	}
	if itbi.NumeroProtocolo != "2025-0001" {
		t.Errorf("NumeroProtocolo = %q", itbi.NumeroProtocolo)
	}
	if itbi.DataCadastro != carimbo.Unix() {
		t.Errorf("DataCadastro = %d; expected %d", itbi.DataCadastro, carimbo.Unix())
	}
	if itbi.EnviadoID != models.StatusInicial || itbi.SolicitadoID != models.StatusInicial {
		t.Errorf("status iniciais = (%d, %d); expected (1, 1)", itbi.EnviadoID, itbi.SolicitadoID)
	}
	if itbi.EnviadoDescricao != "Não" || itbi.SolicitadoDescricao != "Não" {
		t.Errorf("descrições iniciais = (%q, %q); expected (Não, Não)", itbi.EnviadoDescricao, itbi.SolicitadoDescricao)
	}
}

func TestCriarITBISemTelefone(t *testing.T) {
	service, armazem := novoITBIService(t)

	resp := service.Criar(context.Background(), "Maria", "", "2025-0002")
	if !resp.Success {
		t.Fatalf("Criar falhou: %s", resp.Error)
	}
	if resp.Data.TelefoneCliente != nil {
		t.Errorf("TelefoneCliente = %v; telefone ausente deveria ser null", *resp.Data.TelefoneCliente)
	}

	// O documento persistido guarda null, nunca string vazia.
	doc := armazem.Colecoes[schemas.ColecaoITBI][resp.ID]
	if valor, existe := doc["telefoneCliente"]; !existe || valor != nil {
		t.Errorf("documento persistiu telefoneCliente = %v; expected null", valor)
	}
}

func TestBuscarPorIDInexistente(t *testing.T) {
	service, _ := novoITBIService(t)

	resp := service.BuscarPorID(context.Background(), "nao-existe")
	if resp.Success {
		t.Fatal("BuscarPorID deveria falhar para id inexistente")
	}
	if resp.Error != MsgITBINaoEncontrado {
		t.Errorf("Error = %q; expected %q", resp.Error, MsgITBINaoEncontrado)
	}
}

func TestListarTodosOrdenadoPorDataDesc(t *testing.T) {
	service, _ := novoITBIService(t)

	momentos := []time.Time{
		time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
	}
	nomes := []string{"Primeiro", "Terceiro", "Segundo"}

	for i, momento := range momentos {
		service.agora = func() time.Time { return momento }
		if resp := service.Criar(context.Background(), nomes[i], "", ""); !resp.Success {
			t.Fatalf("Criar falhou: %s", resp.Error)
		}
	}

	resp := service.ListarTodos(context.Background())
	if !resp.Success {
		t.Fatalf("ListarTodos falhou: %s", resp.Error)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("ListarTodos retornou %d registros; expected 3", len(resp.Data))
	}

	esperado := []string{"Terceiro", "Segundo", "Primeiro"}
	for i, itbi := range resp.Data {
		if itbi.NomeCliente != esperado[i] {
			t.Errorf("posição %d = %q; expected %q (mais recente primeiro)", i, itbi.NomeCliente, esperado[i])
		}
	}
}

func TestBuscarPorProtocolo(t *testing.T) {
	service, _ := novoITBIService(t)

	criado := service.Criar(context.Background(), "José", "", "2025-0001")
	if !criado.Success {
		t.Fatalf("Criar falhou: %s", criado.Error)
	}

	resp := service.BuscarPorProtocolo(context.Background(), "2025-0001")
	if !resp.Success {
		t.Fatalf("BuscarPorProtocolo falhou: %s", resp.Error)
	}
	if resp.Data.ID != criado.ID {
		t.Errorf("BuscarPorProtocolo retornou id %q; expected %q", resp.Data.ID, criado.ID)
	}

	ausente := service.BuscarPorProtocolo(context.Background(), "2025-9999")
	if ausente.Success {
		t.Fatal("BuscarPorProtocolo deveria falhar para protocolo inexistente")
	}
	if ausente.Error != MsgProtocoloNaoEncontrado {
		t.Errorf("Error = %q; expected %q", ausente.Error, MsgProtocoloNaoEncontrado)
	}
}

func TestBuscarPorStatus(t *testing.T) {
	service, _ := novoITBIService(t)

	a := service.Criar(context.Background(), "A", "", "")
	b := service.Criar(context.Background(), "B", "", "")
	if !a.Success || !b.Success {
		t.Fatal("setup falhou")
	}

	// B passa a enviado=3, solicitado=2.
	if resp := service.AtualizarStatus(context.Background(), b.ID, models.CampoEnviadoID, 3); !resp.Success {
		t.Fatalf("AtualizarStatus falhou: %s", resp.Error)
	}
	if resp := service.AtualizarStatus(context.Background(), b.ID, models.CampoSolicitadoID, 2); !resp.Success {
		t.Fatalf("AtualizarStatus falhou: %s", resp.Error)
	}

	enviado := 3
	resp := service.BuscarPorStatus(context.Background(), &enviado, nil)
	if !resp.Success || len(resp.Data) != 1 || resp.Data[0].ID != b.ID {
		t.Fatalf("BuscarPorStatus(enviado=3) = %+v; expected somente B", resp.Data)
	}

	solicitado := 2
	resp = service.BuscarPorStatus(context.Background(), &enviado, &solicitado)
	if !resp.Success || len(resp.Data) != 1 || resp.Data[0].ID != b.ID {
		t.Fatalf("BuscarPorStatus(enviado=3, solicitado=2) = %+v; expected somente B", resp.Data)
	}

	solicitadoErrado := 3
	resp = service.BuscarPorStatus(context.Background(), &enviado, &solicitadoErrado)
	if !resp.Success || len(resp.Data) != 0 {
		t.Fatalf("BuscarPorStatus com filtro composto sem correspondência = %+v; expected vazio", resp.Data)
	}

	// Sem filtros, equivale a listar todos.
	resp = service.BuscarPorStatus(context.Background(), nil, nil)
	if !resp.Success || len(resp.Data) != 2 {
		t.Fatalf("BuscarPorStatus(nil, nil) retornou %d registros; expected 2", len(resp.Data))
	}
}

func TestAtualizarResolveDescricaoDeStatus(t *testing.T) {
	service, _ := novoITBIService(t)

	criado := service.Criar(context.Background(), "José", "", "")
	if !criado.Success {
		t.Fatalf("Criar falhou: %s", criado.Error)
	}

	novoEnviado := 3
	novoNome := "José Atualizado"
	resp := service.Atualizar(context.Background(), criado.ID, models.AtualizarITBIRequest{
		NomeCliente: &novoNome,
		EnviadoID:   &novoEnviado,
	})
	if !resp.Success {
		t.Fatalf("Atualizar falhou: %s", resp.Error)
	}

	depois := service.BuscarPorID(context.Background(), criado.ID)
	if !depois.Success {
		t.Fatalf("BuscarPorID falhou: %s", depois.Error)
	}
	if depois.Data.NomeCliente != novoNome {
		t.Errorf("NomeCliente = %q; expected %q", depois.Data.NomeCliente, novoNome)
	}
	if depois.Data.EnviadoID != 3 || depois.Data.EnviadoDescricao != "Sim" {
		t.Errorf("enviado = (%d, %q); expected (3, Sim)", depois.Data.EnviadoID, depois.Data.EnviadoDescricao)
	}
	// Campos não informados permanecem intactos.
	if depois.Data.SolicitadoID != models.StatusInicial || depois.Data.SolicitadoDescricao != "Não" {
		t.Errorf("solicitado = (%d, %q); não deveria ter mudado", depois.Data.SolicitadoID, depois.Data.SolicitadoDescricao)
	}
	if depois.Data.DataCadastro != criado.Data.DataCadastro {
		t.Errorf("DataCadastro mudou de %d para %d", criado.Data.DataCadastro, depois.Data.DataCadastro)
	}
}

func TestAtualizarTelefoneVazioViraNull(t *testing.T) {
	service, armazem := novoITBIService(t)

	criado := service.Criar(context.Background(), "José", "11987654321", "")
	if !criado.Success {
		t.Fatalf("Criar falhou: %s", criado.Error)
	}

	vazio := ""
	resp := service.Atualizar(context.Background(), criado.ID, models.AtualizarITBIRequest{TelefoneCliente: &vazio})
	if !resp.Success {
		t.Fatalf("Atualizar falhou: %s", resp.Error)
	}

	doc := armazem.Colecoes[schemas.ColecaoITBI][criado.ID]
	if valor := doc["telefoneCliente"]; valor != nil {
		t.Errorf("telefoneCliente persistido = %v; expected null", valor)
	}
}

func TestAtualizarSemCampos(t *testing.T) {
	service, _ := novoITBIService(t)

	resp := service.Atualizar(context.Background(), "qualquer", models.AtualizarITBIRequest{})
	if !resp.Success {
		t.Errorf("Atualizar sem campos deveria ser no-op de sucesso; Error = %q", resp.Error)
	}
}

func TestAtualizarStatusCampoInvalido(t *testing.T) {
	service, _ := novoITBIService(t)

	resp := service.AtualizarStatus(context.Background(), "id", "outroCampo", 2)
	if resp.Success {
		t.Fatal("AtualizarStatus deveria rejeitar campo desconhecido")
	}
}

func TestAtualizarStatusIsolaOParDeCampos(t *testing.T) {
	service, _ := novoITBIService(t)

	criado := service.Criar(context.Background(), "José", "", "")
	if !criado.Success {
		t.Fatalf("Criar falhou: %s", criado.Error)
	}

	resp := service.AtualizarStatus(context.Background(), criado.ID, models.CampoSolicitadoID, 2)
	if !resp.Success {
		t.Fatalf("AtualizarStatus falhou: %s", resp.Error)
	}

	depois := service.BuscarPorID(context.Background(), criado.ID)
	if depois.Data.SolicitadoID != 2 || depois.Data.SolicitadoDescricao != "Em Andamento" {
		t.Errorf("solicitado = (%d, %q); expected (2, Em Andamento)", depois.Data.SolicitadoID, depois.Data.SolicitadoDescricao)
	}
	if depois.Data.EnviadoID != models.StatusInicial || depois.Data.EnviadoDescricao != "Não" {
		t.Errorf("enviado = (%d, %q); não deveria ter mudado", depois.Data.EnviadoID, depois.Data.EnviadoDescricao)
	}
}

func TestAtualizarStatusDesconhecidoGravaSentinela(t *testing.T) {
	service, _ := novoITBIService(t)

	criado := service.Criar(context.Background(), "José", "", "")
	if !criado.Success {
		t.Fatalf("Criar falhou: %s", criado.Error)
	}

	resp := service.AtualizarStatus(context.Background(), criado.ID, models.CampoEnviadoID, 42)
	if !resp.Success {
		t.Fatalf("AtualizarStatus falhou: %s", resp.Error)
	}

	depois := service.BuscarPorID(context.Background(), criado.ID)
	if depois.Data.EnviadoDescricao != models.DescricaoDesconhecida {
		t.Errorf("EnviadoDescricao = %q; expected %q", depois.Data.EnviadoDescricao, models.DescricaoDesconhecida)
	}
}

func TestExcluir(t *testing.T) {
	service, _ := novoITBIService(t)

	criado := service.Criar(context.Background(), "José", "", "")
	if !criado.Success {
		t.Fatalf("Criar falhou: %s", criado.Error)
	}

	resp := service.Excluir(context.Background(), criado.ID)
	if !resp.Success {
		t.Fatalf("Excluir falhou: %s", resp.Error)
	}

	busca := service.BuscarPorID(context.Background(), criado.ID)
	if busca.Success {
		t.Fatal("registro excluído ainda encontrado")
	}

	repetido := service.Excluir(context.Background(), criado.ID)
	if repetido.Success {
		t.Fatal("Excluir deveria falhar para id já removido")
	}
	if repetido.Error != MsgITBINaoEncontrado {
		t.Errorf("Error = %q; expected %q", repetido.Error, MsgITBINaoEncontrado)
	}
}
