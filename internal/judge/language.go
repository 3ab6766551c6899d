package judge

import "strings"

// Judge0 CE language ids for the supported set.
var languageIDs = map[string]int{
	"c++":        54,
	"java":       62,
	"javascript": 63,
	"python":     71,
}

var languageAliases = map[string]string{
	"cpp":     "c++",
	"js":      "javascript",
	"py":      "python",
	"python3": "python",
}

// NormalizeLanguage lower-cases name and resolves aliases such as "cpp" to
// their canonical form. Unknown names are returned lower-cased.
func NormalizeLanguage(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := languageAliases[n]; ok {
		return canonical
	}
	return n
}

// LanguageID maps a language name to its Judge0 id. The second result is
// false for unsupported languages; callers must not fall back to a default.
func LanguageID(name string) (int, bool) {
	id, ok := languageIDs[NormalizeLanguage(name)]
	return id, ok
}

// SupportedLanguages returns the canonical names accepted by LanguageID.
func SupportedLanguages() []string {
	return []string{"c++", "java", "javascript", "python"}
}
