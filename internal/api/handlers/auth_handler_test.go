package handlers

import (
	"testing"

	"github.com/brunodias77/cartorio-app/internal/models"
)

func TestEntregarUltimo(t *testing.T) {
	eventos := make(chan *models.Usuario, 1)

	primeiro := &models.Usuario{UID: "uid-1"}
	segundo := &models.Usuario{UID: "uid-2"}

	entregarUltimo(eventos, primeiro)
	// Consumidor ainda não leu: o estado intermediário é substituído.
	entregarUltimo(eventos, segundo)
	entregarUltimo(eventos, nil)

	select {
	case u := <-eventos:
		if u != nil {
			t.Errorf("estado entregue = %+v; expected o mais recente (nil, pós-logout)", u)
		}
	default:
		t.Fatal("canal vazio; o último estado deveria estar disponível")
	}

	select {
	case u := <-eventos:
		t.Errorf("estado extra no canal: %+v; somente o mais recente deveria restar", u)
	default:
	}
}

func TestEntregarUltimoConsumidorEmDia(t *testing.T) {
	eventos := make(chan *models.Usuario, 1)

	u := &models.Usuario{UID: "uid-1"}
	entregarUltimo(eventos, u)

	if recebido := <-eventos; recebido != u {
		t.Errorf("recebido = %+v; expected %+v", recebido, u)
	}
}
