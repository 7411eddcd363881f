package mask

import "strings"

// placeholder показывается вместо отсутствующего email
const placeholder = "******@****.com"

// Email маскирует адрес для публичного показа: первые два символа
// локальной части сохраняются, остаток заменяется на ****, домен
// остается как есть. Для пустого адреса возвращается заглушка.
func Email(email string) string {
	if email == "" {
		return placeholder
	}

	at := strings.Index(email, "@")
	if at < 0 {
		return placeholder
	}

	local := []rune(email[:at])
	domain := email[at+1:]

	// Срез по рунам: байтовый срез резал бы многобайтные символы
	prefix := local
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	return string(prefix) + "****@" + domain
}
