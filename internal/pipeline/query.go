package pipeline

import (
	"net/url"
	"strings"

	"go-records-dashboard/internal/model"
	"go-records-dashboard/pkg/utils"
)

// BuildQuery turns key/value pairs into "?k=v&..." in input order.
// nil values and blank strings are dropped; key names are passed through untouched.
func BuildQuery(params model.QueryParams) string {
	var b strings.Builder
	for _, p := range params {
		if p.Value == nil {
			continue
		}
		if s, ok := p.Value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(utils.Stringify(p.Value)))
	}
	if b.Len() == 0 {
		return ""
	}
	return "?" + b.String()
}
