package headers

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

type clientIPKey struct{}

// Forwarded rewrites the request for deployments behind a TLS terminating
// proxy. When X-Forwarded-Proto is present it becomes the URL scheme and the
// port comes from X-Forwarded-Port, defaulting to 443 for https and 80
// otherwise. The client address from ClientIP is stored in the context.
//
// Only install it when every request passes through a trusted proxy.
func Forwarded(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); proto != "" {
			port := strings.TrimSpace(r.Header.Get("X-Forwarded-Port"))
			if port == "" {
				port = defaultPort(proto)
			}

			host := r.Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			if port != defaultPort(proto) {
				host = net.JoinHostPort(host, port)
			}

			r = r.Clone(r.Context())
			r.URL.Scheme = proto
			r.URL.Host = host
			r.Host = host
		}

		ctx := context.WithValue(r.Context(), clientIPKey{}, ClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func defaultPort(proto string) string {
	if proto == "https" {
		return "443"
	}
	return "80"
}

// ClientIP returns the originating address of r. It prefers the first valid
// entry of X-Forwarded-For, then X-Real-IP, then RemoteAddr, and returns ""
// when none parses.
func ClientIP(r *http.Request) string {
	for part := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if ip := parseIP(part); ip != "" {
			return ip
		}
	}
	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return parseIP(host)
	}
	return parseIP(r.RemoteAddr)
}

// ClientIPFromContext returns the address stored by Forwarded.
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
