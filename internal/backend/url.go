package backend

import "strings"

// BuildURL joins the configured base URL with an API endpoint.
// It repairs a single-slash scheme, adds http:// when the scheme is
// missing and inserts the /api prefix unless the base already has it.
func BuildURL(base, endpoint string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")

	switch {
	case strings.HasPrefix(base, "https:/") && !strings.HasPrefix(base, "https://"):
		base = strings.Replace(base, "https:/", "https://", 1)
	case strings.HasPrefix(base, "http:/") && !strings.HasPrefix(base, "http://"):
		base = strings.Replace(base, "http:/", "http://", 1)
	case !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://"):
		base = "http://" + base
	}

	endpoint = strings.TrimPrefix(endpoint, "/")

	if strings.HasSuffix(base, "/api") || strings.Contains(base, "/api/") || strings.HasPrefix(endpoint, "api/") {
		return base + "/" + endpoint
	}
	return base + "/api/" + endpoint
}
