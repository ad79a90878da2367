package utils

import (
	"fmt"
	"strings"
)

// ExtractLocalID parses a namespaced global identifier of the form
// "<namespace>/<localId>" (e.g. "gid://shopify/Product/8123456789") and
// returns the trailing local id. The local id is what the rest of the
// system uses as the product scope key.
func ExtractLocalID(gid string) (string, error) {
	idx := strings.LastIndex(gid, "/")
	if idx < 0 {
		return "", fmt.Errorf("malformed global id %q: no namespace separator", gid)
	}
	localID := gid[idx+1:]
	if localID == "" {
		return "", fmt.Errorf("malformed global id %q: empty local id", gid)
	}
	return localID, nil
}
