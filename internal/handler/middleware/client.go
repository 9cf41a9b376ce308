package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientKey identifies the caller for rate limiting: the first
// X-Forwarded-For entry when present, otherwise the peer host.
func ClientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if key := strings.TrimSpace(first); key != "" {
			return key
		}
	}

	return PeerKey(c)
}

// PeerKey is the host of the direct connection. Unlike ClientKey it cannot be
// chosen by the caller through request headers.
func PeerKey(c *gin.Context) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
