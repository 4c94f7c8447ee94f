package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	decorationPolicyOnce sync.Once
	decorationPolicy     *bluemonday.Policy
)

// Sanitizer turns caller-supplied decoration strings into fragments. A nil
// Sanitizer, or one without a policy, escapes the input as text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer wraps a bluemonday policy. Passing nil yields an escaping
// sanitizer.
func NewSanitizer(policy *bluemonday.Policy) *Sanitizer {
	return &Sanitizer{policy: policy}
}

// Fragment converts raw decoration content into markup.
func (s *Sanitizer) Fragment(raw string) Fragment {
	if s == nil || s.policy == nil {
		return Text(raw)
	}
	return Fragment(strings.TrimSpace(s.policy.Sanitize(raw)))
}

// AllowsMarkup reports whether decorations are sanitized rather than escaped.
func (s *Sanitizer) AllowsMarkup() bool {
	return s != nil && s.policy != nil
}

// DecorationPolicy returns the shared policy for add-on and help markup:
// inline formatting, icons (<i class="icon-*">), links and buttons, nothing
// that can script or restyle the page.
func DecorationPolicy() *bluemonday.Policy {
	decorationPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "em", "i", "small", "code", "abbr", "br", "span")
		policy.AllowAttrs("class").OnElements("i", "span", "a", "button")
		policy.AllowAttrs("title").OnElements("abbr", "span", "a")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("type").Matching(bluemonday.SpaceSeparatedTokens).OnElements("button")
		policy.AllowElements("a", "button")
		decorationPolicy = policy
	})
	return decorationPolicy
}
