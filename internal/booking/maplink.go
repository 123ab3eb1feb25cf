package booking

import (
	"net/url"
	"strings"
)

const googleMaps = "https://www.google.com/maps"

// BuildMapSrc returns the iframe source for a workshop map. Google map links
// already in embed form are kept, search links get output=embed, anything else
// falls back to a search for location. Without either it returns "".
func BuildMapSrc(mapEmbed, location string) string {
	if src, ok := embedSrc(mapEmbed); ok {
		return src
	}

	if location == "" {
		return ""
	}

	return googleMaps + "?q=" + encodeURIComponent(location) + "&output=embed"
}

// BuildMapLink returns the directions link used in confirmations.
func BuildMapLink(mapEmbed, location string) string {
	switch {
	case mapEmbed != "":
		return mapEmbed
	case location != "":
		return googleMaps + "?q=" + encodeURIComponent(location)
	default:
		return ""
	}
}

func embedSrc(mapEmbed string) (string, bool) {
	if mapEmbed == "" {
		return "", false
	}

	u, err := url.Parse(mapEmbed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	host := u.Hostname()
	if !strings.Contains(host, "google") && !strings.Contains(host, "goo.gl") {
		return "", false
	}

	if strings.Contains(u.Path, "/embed") {
		return mapEmbed, true
	}

	query := u.Query()
	if query.Get("output") == "embed" {
		return mapEmbed, true
	}

	if !query.Has("q") {
		return "", false
	}

	u.RawQuery = withEmbedOutput(u.RawQuery)

	return u.String(), true
}

// withEmbedOutput sets output=embed keeping the order of the other parameters.
// The first output parameter is replaced in place, later ones are dropped.
func withEmbedOutput(rawQuery string) string {
	pairs := make([]string, 0)
	replaced := false

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		key, _ = url.QueryUnescape(key)
		value, _ = url.QueryUnescape(value)

		if key == "output" {
			if replaced {
				continue
			}

			value = "embed"
			replaced = true
		}

		pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}

	if !replaced {
		pairs = append(pairs, "output=embed")
	}

	return strings.Join(pairs, "&")
}

// encodeURIComponent escapes s like the browser function of the same name.
func encodeURIComponent(s string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")

	return strings.NewReplacer(
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	).Replace(escaped)
}
