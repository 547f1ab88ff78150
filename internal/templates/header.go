package templates

import (
	"regexp"
	"strings"
)

const frontmatterDelimiter = "---"

var (
	htmlVersionRE        = regexp.MustCompile(`^<!--\s*llman-template-version:\s*([0-9]+)\s*-->\s*$`)
	frontmatterVersionRE = regexp.MustCompile(`^\s*llman-template-version:\s*([0-9]+)\s*$`)
)

// SplitLines splits file content into lines the way a text reader does:
// "\n" and "\r\n" terminate a line and a final terminator does not start an
// empty trailing line. Empty content has zero lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// hasFrontmatter reports whether the first line opens a frontmatter block.
func hasFrontmatter(lines []string) bool {
	return len(lines) > 0 && strings.TrimSpace(lines[0]) == frontmatterDelimiter
}

// frontmatterEnd returns the index of the closing delimiter, or -1 when the
// block opened on the first line is never closed.
func frontmatterEnd(lines []string) int {
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			return i
		}
	}
	return -1
}

// ExtractVersion returns the llman-template-version declared by the file.
// ok is false when no version could be extracted; msg then describes why.
func ExtractVersion(lines []string) (version string, ok bool, msg string) {
	f, version, ok := extractVersion(lines)
	if !ok {
		return "", false, f.message
	}
	return version, true, ""
}

func extractVersion(lines []string) (finding, string, bool) {
	if len(lines) == 0 {
		return finding{CodeEmptyFile, "empty file (missing version header)"}, "", false
	}

	if hasFrontmatter(lines) {
		end := frontmatterEnd(lines)
		if end < 0 {
			return unterminatedFrontmatter, "", false
		}
		if v, ok := metadataVersion(lines[1:end]); ok {
			return finding{}, v, true
		}
		return finding{CodeMissingMetadataVersion, "missing llman-template-version in metadata"}, "", false
	}

	m := htmlVersionRE.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if m == nil {
		return finding{CodeInvalidVersionHeader, "missing or invalid llman-template-version header on first line"}, "", false
	}
	return finding{}, m[1], true
}

var unterminatedFrontmatter = finding{CodeUnterminatedFrontmatter, "unterminated frontmatter"}

// metadataVersion scans frontmatter lines for a top-level "metadata:" key and
// returns the first llman-template-version nested below it. The block ends at
// the first non-blank line indented at or above the key.
func metadataVersion(block []string) (string, bool) {
	inMetadata := false
	for _, line := range block {
		if !inMetadata {
			if indentation(line) == 0 && strings.TrimRight(line, " \t") == "metadata:" {
				inMetadata = true
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if indentation(line) == 0 {
			return "", false
		}
		if m := frontmatterVersionRE.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func indentation(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// ParseFrontmatter returns the flat key/value pairs of the frontmatter block
// opened on the first line. Only "key: value" lines are recorded; the value is
// trimmed and one layer of matching quotes is removed. A repeated key keeps its
// last value. ok is false when the block is not closed.
func ParseFrontmatter(lines []string) (fields map[string]string, ok bool) {
	end := frontmatterEnd(lines)
	if end < 0 {
		return nil, false
	}
	fields = make(map[string]string)
	for _, line := range lines[1:end] {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fields[key] = unquote(strings.TrimSpace(value))
	}
	return fields, true
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') || (value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
