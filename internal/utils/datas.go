package utils

import "time"

// FormatarData formata um unix timestamp (segundos) como data pt-BR
// "dd/mm/aaaa". Timestamps não positivos viram "-".
func FormatarData(unixSegundos int64) string {
	if unixSegundos <= 0 {
		return "-"
	}
	return time.Unix(unixSegundos, 0).Format("02/01/2006")
}
