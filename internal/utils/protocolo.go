package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GerarProtocolo gera um número de protocolo no formato "<ano>-<4 dígitos>".
// A unicidade não é garantida pelo formato; o número serve como referência
// humana, não como chave.
func GerarProtocolo() string {
	ano := time.Now().Year()
	return fmt.Sprintf("%d-%04d", ano, rand.Intn(10000))
}
