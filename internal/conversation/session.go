package conversation

import (
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"strings"
)

var sessionPrefixes = []string{"/c/", "/share/", "/chat/"}

// SessionID names the conversation at loc so that pins survive reloads.
// Site conversations use the id in their path; everything else hashes the
// location.
func SessionID(loc *url.URL) string {
	if loc == nil {
		return ""
	}
	if loc.Scheme != "file" {
		for _, prefix := range sessionPrefixes {
			rest, ok := strings.CutPrefix(loc.Path, prefix)
			if !ok {
				continue
			}
			if id, _, _ := strings.Cut(rest, "/"); id != "" {
				return id
			}
		}
	}
	key := loc.Scheme + "://" + strings.ToLower(loc.Host) + loc.Path
	sum := sha1.Sum([]byte(key))
	return loc.Scheme + "-" + hex.EncodeToString(sum[:8])
}
