package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// IsEmailDomainValid checa se o domínio do e-mail resolve (MX ou A).
// Usado só no registro de usuários do painel; consulta DNS com timeout
// curto para não segurar a requisição.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
