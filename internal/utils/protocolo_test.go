package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGerarProtocolo(t *testing.T) {
	padrao := regexp.MustCompile(`^\d{4}-\d{4}$`)

	for i := 0; i < 50; i++ {
		protocolo := GerarProtocolo()
		if !padrao.MatchString(protocolo) {
			t.Fatalf("GerarProtocolo() = %q; esperado formato AAAA-NNNN", protocolo)
		}

		ano := strings.SplitN(protocolo, "-", 2)[0]
		if ano != fmt.Sprintf("%d", time.Now().Year()) {
			t.Errorf("GerarProtocolo() = %q; ano esperado %d", protocolo, time.Now().Year())
		}

		sufixo, err := strconv.Atoi(strings.SplitN(protocolo, "-", 2)[1])
		if err != nil || sufixo < 0 || sufixo > 9999 {
			t.Errorf("GerarProtocolo() = %q; sufixo fora da faixa 0000-9999", protocolo)
		}
	}
}
