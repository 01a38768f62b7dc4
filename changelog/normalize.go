package changelog

import (
	"strings"
)

const resolvePrefix = "Resolve "

// NormalizeTitle strips the boilerplate added to titles of merge requests
// generated from issues: one leading "Resolve " and one pair of surrounding
// double quotes. Applied once, never recursively; other titles pass through
// unchanged.
func NormalizeTitle(title string) string {
	if !strings.HasPrefix(title, resolvePrefix) {
		return title
	}

	title = title[len(resolvePrefix):]

	if len(title) >= 2 && strings.HasPrefix(title, `"`) && strings.HasSuffix(title, `"`) {
		title = title[1 : len(title)-1]
	}

	return title
}

// NormalizeVersion strips one leading occurrence of the configured prefix
// from a version heading (e.g. "Release 1.0" -> "1.0").
func NormalizeVersion(version, stripPrefix string) string {
	if stripPrefix != "" && strings.HasPrefix(version, stripPrefix) {
		return version[len(stripPrefix):]
	}

	return version
}
