package mocks

import (
	"fmt"
	"sort"
	"strings"
)

func copiarDoc(doc map[string]interface{}) map[string]interface{} {
	copia := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		copia[k] = v
	}
	return copia
}

// filtroCasa avalia um subconjunto da sintaxe filter_by do Typesense:
// cláusulas "campo:=valor" (valor opcionalmente entre backticks) unidas por
// " && ". Suficiente para as consultas da aplicação.
func filtroCasa(doc map[string]interface{}, filtro string) bool {
	if filtro == "" {
		return true
	}

	for _, clausula := range strings.Split(filtro, " && ") {
		partes := strings.SplitN(clausula, ":=", 2)
		if len(partes) != 2 {
			return false
		}
		campo := strings.TrimSpace(partes[0])
		valor := strings.Trim(strings.TrimSpace(partes[1]), "`")

		atual, ok := doc[campo]
		if !ok || atual == nil {
			return false
		}
		if fmt.Sprintf("%v", atual) != valor {
			return false
		}
	}

	return true
}

func ordenarPorDataDesc(docs []map[string]interface{}) {
	sort.SliceStable(docs, func(i, j int) bool {
		return dataCadastroDe(docs[i]) > dataCadastroDe(docs[j])
	})
}

func dataCadastroDe(doc map[string]interface{}) int64 {
	switch v := doc["dataCadastro"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
