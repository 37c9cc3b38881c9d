package sanitizer

import (
	"context"
	"fmt"
	"strings"
)

// SanitizeURL allows http(s), www. and bare domains. Script and file schemes are rejected.
func (s *InputSanitizer) SanitizeURL(url string) (bool, string) {
	if url == "" {
		return false, MsgEmptyURL
	}

	ctx := context.Background()
	lower := strings.ToLower(url)

	for _, proto := range blockedProtocols {
		if strings.HasPrefix(lower, proto) {
			s.l.Errorf(ctx, "%s: security: blocked protocol %s", LogPrefixSanitizeURL, proto)
			return false, fmt.Sprintf(MsgProtocolBlocked, proto)
		}
	}

	for _, proto := range allowedProtocols {
		if strings.HasPrefix(lower, proto) {
			return true, MsgURLSafe
		}
	}

	if strings.Contains(url, ".") && !strings.HasPrefix(url, "/") {
		return true, MsgURLSafeBareDomain
	}

	s.l.Warnf(ctx, "%s: suspicious url %q", LogPrefixSanitizeURL, url)
	return false, MsgURLNotAllowed
}
