package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

// languageToExt maps code block language tags to file extensions.
var languageToExt = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"c++":        "cpp",
	"c":          "c",
	"go":         "go",
	"rust":       "rs",
	"ruby":       "rb",
	"html":       "html",
	"css":        "css",
	"bash":       "sh",
	"shell":      "sh",
	"sql":        "sql",
	"json":       "json",
	"yaml":       "yaml",
	"toml":       "toml",
	"xml":        "xml",
	"markdown":   "md",
	"dockerfile": "dockerfile",
	"plaintext":  "txt",
	"mermaid":    "mmd",
}

var filenamePattern = regexp.MustCompile(`([a-zA-Z0-9_\-\.]+\.[a-zA-Z0-9]+)`)

// ExtractValidFilename extracts a filename (with extension) from a line of text.
func ExtractValidFilename(line string) string {
	for _, match := range filenamePattern.FindAllString(line, -1) {
		if filepath.Ext(match) != "" {
			return match
		}
	}
	return ""
}

// GetExt returns the file extension for a code block language tag.
func GetExt(language string) string {
	ext, ok := languageToExt[strings.ToLower(language)]
	if !ok {
		return "txt"
	}
	return ext
}

// GetFilename derives an attachment filename for an extracted code block.
//
// Tries to find a filename mentioned in the first two lines of the code
// (a comment header, a shebang path). Falls back to 'snippet.<ext>'.
func GetFilename(code string, language string) string {
	lines := strings.Split(strings.TrimSpace(code), "\n")
	sample := ""
	if len(lines) > 0 {
		sample = lines[0]
		if len(lines) > 1 {
			sample += " " + lines[1]
		}
	}
	sample = strings.ReplaceAll(sample, "\\", "")

	ext := GetExt(language)
	if name := ExtractValidFilename(sample); name != "" {
		if strings.HasSuffix(name, "."+ext) && len(name) <= 24 {
			return name
		}
		return name + "." + ext
	}
	return "snippet." + ext
}
