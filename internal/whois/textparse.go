package whois

import (
	"regexp"
	"strings"
)

// fieldPattern 行首錨定的 "Label: value"，不分大小寫
func fieldPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(label) + `:[ \t]*(.*?)[ \t]*\r?$`)
}

// firstField 取第一個非空值，找不到回傳空字串
func firstField(re *regexp.Regexp, text string) string {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return ""
}

// allFields 收集重複出現的欄位 (例如多行 Name Server)
func allFields(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if v := strings.TrimSpace(m[1]); v != "" {
			out = append(out, v)
		}
	}
	return out
}
