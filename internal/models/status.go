package models

// DescricaoDesconhecida é o rótulo sentinela gravado quando a consulta de
// descrição de status falha (id inexistente ou erro de leitura).
const DescricaoDesconhecida = "Desconhecido"

// StatusInicial é o código de status atribuído aos dois campos na criação.
const StatusInicial = 1

// StatusConfirmacao é uma opção de status da collection de referência
// `status_confirmacao`. Somente leitura do ponto de vista da aplicação;
// o conteúdo é mantido pelo seed (cmd/seed).
type StatusConfirmacao struct {
	ID        string `json:"id"`
	Descricao string `json:"descricao"`
}
