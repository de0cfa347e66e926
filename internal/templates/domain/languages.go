package domain

import "strings"

const (
	LangJava       = "java"
	LangDotnet     = "dotnet"
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
)

// SupportedLanguages is the fixed set of languages a project may target.
var SupportedLanguages = []string{LangJava, LangDotnet, LangPython, LangJavaScript, LangTypeScript}

// NormalizeLanguage lowercases lang and reports whether it is supported.
func NormalizeLanguage(lang string) (string, bool) {
	l := strings.ToLower(strings.TrimSpace(lang))
	for _, s := range SupportedLanguages {
		if s == l {
			return l, true
		}
	}
	return l, false
}
