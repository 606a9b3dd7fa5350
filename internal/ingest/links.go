package ingest

import "strings"

// Profile links are derived from the candidate's name when the record does
// not supply them, matching the upstream enricher's conventions.

// LinkedInURL derives a LinkedIn profile URL from a candidate name.
func LinkedInURL(name string) string {
	slug := cleanName(name, "-")
	if slug == "" {
		slug = "anonymous"
	}
	return "https://linkedin.com/in/" + slug
}

// GitHubURL derives a GitHub profile URL from a candidate name.
func GitHubURL(name string) string {
	slug := cleanName(name, "")
	if slug == "" {
		slug = "anonymous"
	}
	return "https://github.com/" + slug
}

// PortfolioURL derives a personal site URL from a candidate name.
func PortfolioURL(name string) string {
	slug := cleanName(name, "")
	if slug == "" {
		slug = "anonymous"
	}
	return "https://" + slug + ".dev"
}

// cleanName lowercases the name, strips everything but letters and spaces,
// then joins words with the given separator.
func cleanName(name, sep string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), sep)
}
