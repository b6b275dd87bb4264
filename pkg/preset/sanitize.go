package preset

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	affixPolicyOnce sync.Once
	affixPolicy     *bluemonday.Policy
)

// sanitizeAffix strips markup from affix and delimiter strings read from
// preset files. Entities escaped by the policy are decoded again since the
// result is mask text, not HTML.
func sanitizeAffix(raw string) string {
	if raw == "" || !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	return html.UnescapeString(affixSanitizer().Sanitize(raw))
}

func affixSanitizer() *bluemonday.Policy {
	affixPolicyOnce.Do(func() {
		affixPolicy = bluemonday.StrictPolicy()
	})
	return affixPolicy
}
