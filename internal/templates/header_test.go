package templates

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", []string{""}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     string
		wantCode string
	}{
		{
			name:    "html comment header",
			content: "<!-- llman-template-version: 3 -->\n# Title\n",
			want:    "3",
		},
		{
			name:    "html comment tight spacing",
			content: "<!--llman-template-version:12-->\n",
			want:    "12",
		},
		{
			name:    "html comment trailing whitespace",
			content: "<!-- llman-template-version: 7 -->  \n",
			want:    "7",
		},
		{
			name:    "leading zeros kept verbatim",
			content: "<!-- llman-template-version: 02 -->\n",
			want:    "02",
		},
		{
			name:     "html header not on first line",
			content:  "# Title\n<!-- llman-template-version: 1 -->\n",
			wantCode: CodeInvalidVersionHeader,
		},
		{
			name:     "html header non numeric",
			content:  "<!-- llman-template-version: v1 -->\n",
			wantCode: CodeInvalidVersionHeader,
		},
		{
			name:     "empty file",
			content:  "",
			wantCode: CodeEmptyFile,
		},
		{
			name:    "frontmatter metadata version",
			content: "---\nname: x\nmetadata:\n  llman-template-version: 4\n---\nbody\n",
			want:    "4",
		},
		{
			name:    "frontmatter metadata after blank line",
			content: "---\nmetadata:\n\n  author: me\n  llman-template-version: 5\n---\n",
			want:    "5",
		},
		{
			name:    "frontmatter version nested deeper",
			content: "---\nmetadata:\n  llman:\n    llman-template-version: 9\n---\n",
			want:    "9",
		},
		{
			name:     "frontmatter version outside metadata",
			content:  "---\nllman-template-version: 4\n---\n",
			wantCode: CodeMissingMetadataVersion,
		},
		{
			name:     "frontmatter version after metadata block ends",
			content:  "---\nmetadata:\n  author: me\nother:\n  llman-template-version: 4\n---\n",
			wantCode: CodeMissingMetadataVersion,
		},
		{
			name:     "indented metadata key is not top level",
			content:  "---\nouter:\n  metadata:\n    llman-template-version: 4\n---\n",
			wantCode: CodeMissingMetadataVersion,
		},
		{
			name:     "unterminated frontmatter",
			content:  "---\nmetadata:\n  llman-template-version: 4\n",
			wantCode: CodeUnterminatedFrontmatter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, got, ok := extractVersion(SplitLines(tt.content))
			if tt.wantCode != "" {
				if ok {
					t.Fatalf("extractVersion() = %q, want failure %s", got, tt.wantCode)
				}
				if f.code != tt.wantCode {
					t.Fatalf("extractVersion() code = %s, want %s (%s)", f.code, tt.wantCode, f.message)
				}
				return
			}
			if !ok {
				t.Fatalf("extractVersion() failed: %s", f.message)
			}
			if got != tt.want {
				t.Errorf("extractVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractVersionMessages(t *testing.T) {
	if _, ok, msg := ExtractVersion(nil); ok || msg != "empty file (missing version header)" {
		t.Errorf("empty: ok=%v msg=%q", ok, msg)
	}
	if _, ok, msg := ExtractVersion([]string{"---", "a: b"}); ok || msg != "unterminated frontmatter" {
		t.Errorf("unterminated: ok=%v msg=%q", ok, msg)
	}
	v, ok, msg := ExtractVersion([]string{"<!-- llman-template-version: 1 -->"})
	if !ok || v != "1" || msg != "" {
		t.Errorf("html: v=%q ok=%v msg=%q", v, ok, msg)
	}
}

func TestParseFrontmatter(t *testing.T) {
	lines := SplitLines(`---
name: "llman-sdd-foo"
description: 'Does: things'
empty:
no colon here
 : orphan value
name2 : spaced
dup: first
dup: second
metadata:
  llman-template-version: 1
---
body: ignored
`)
	got, ok := ParseFrontmatter(lines)
	if !ok {
		t.Fatal("ParseFrontmatter() reported unterminated block")
	}
	want := map[string]string{
		"name":                   "llman-sdd-foo",
		"description":            "Does: things",
		"empty":                  "",
		"name2":                  "spaced",
		"dup":                    "second",
		"metadata":               "",
		"llman-template-version": "1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFrontmatter() = %#v, want %#v", got, want)
	}

	if _, ok := ParseFrontmatter([]string{"---", "name: x"}); ok {
		t.Error("ParseFrontmatter() accepted an unterminated block")
	}
}

func TestUnquoteStripsOneLayer(t *testing.T) {
	tests := map[string]string{
		`"x"`:     "x",
		`'x'`:     "x",
		`""x""`:   `"x"`,
		`"x'`:     `"x'`,
		`"`:       `"`,
		`plain`:   "plain",
		`"a" "b"`: `a" "b`,
	}
	for in, want := range tests {
		if got := unquote(in); got != want {
			t.Errorf("unquote(%s) = %s, want %s", in, got, want)
		}
	}
}
