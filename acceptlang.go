package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing work for oversized inputs.
const maxAcceptLanguageLength = 4096

type acceptTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage picks the best locale from available for an HTTP
// Accept-Language header. Quality values are honored; an exact tag match
// beats a base-language match of equal quality. With no usable match the
// first available locale is returned.
//
// This is display-time tooling for HTTP collaborators; the core resolver
// never inspects headers.
func ParseAcceptLanguage(header string, available []Locale) Locale {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	for _, tag := range parseAcceptTags(header) {
		var partial Locale
		for _, avail := range available {
			norm := normalizeTag(string(avail))
			if tag.tag == norm {
				return avail
			}
			if partial == "" && baseTag(tag.tag) == baseTag(norm) {
				partial = avail
			}
		}
		if partial != "" {
			return partial
		}
	}

	return available[0]
}

func parseAcceptTags(header string) []acceptTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []acceptTag
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, acceptTag{tag: normalizeTag(langPart), quality: quality})
		}
	}

	slices.SortStableFunc(tags, func(a, b acceptTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func baseTag(tag string) string {
	if cut := strings.IndexAny(tag, "-_"); cut > 0 {
		return tag[:cut]
	}
	return tag
}
