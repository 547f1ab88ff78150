package templates

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestIsSkillTemplate(t *testing.T) {
	rules := DefaultSkillRules()
	tests := []struct {
		rel  string
		want bool
	}{
		{"skills/llman-sdd-foo.md", true},
		{"nested/skills/llman-sdd-foo.md", true},
		{"skills/other.md", false},
		{"llman-sdd-foo.md", false},
		{"skills/nested/llman-sdd-foo.md", false},
		{"myskills/llman-sdd-foo.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := rules.IsSkillTemplate(tt.rel); got != tt.want {
				t.Errorf("IsSkillTemplate(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func skillDoc(fields ...string) []string {
	lines := []string{"---"}
	lines = append(lines, fields...)
	lines = append(lines, "metadata:", "  llman-template-version: 1", "---", "# Skill")
	return lines
}

func findingCodes(fs []finding) []string {
	codes := make([]string, 0, len(fs))
	for _, f := range fs {
		codes = append(codes, f.code)
	}
	return codes
}

func TestValidateSkill(t *testing.T) {
	const rel = "skills/llman-sdd-foo.md"
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "valid",
			lines: skillDoc("name: llman-sdd-foo", `description: "x"`),
		},
		{
			name:  "uppercase name",
			lines: skillDoc("name: Foo", "description: x"),
			want:  []string{CodeSkillInvalidName, CodeSkillNameStem},
		},
		{
			name:  "name differs from stem",
			lines: skillDoc("name: bar", "description: x"),
			want:  []string{CodeSkillNameStem},
		},
		{
			name:  "missing name and description",
			lines: skillDoc("title: x"),
			want:  []string{CodeSkillMissingName, CodeSkillMissingDescription},
		},
		{
			name:  "blank quoted name",
			lines: skillDoc(`name: "  "`, "description: x"),
			want:  []string{CodeSkillMissingName},
		},
		{
			name:  "double hyphen",
			lines: skillDoc("name: llman--sdd", "description: x"),
			want:  []string{CodeSkillInvalidName, CodeSkillNameStem},
		},
		{
			name:  "description too long",
			lines: skillDoc("name: llman-sdd-foo", "description: "+strings.Repeat("d", 1025)),
			want:  []string{CodeSkillDescriptionTooLong},
		},
		{
			name:  "description at limit",
			lines: skillDoc("name: llman-sdd-foo", "description: "+strings.Repeat("d", 1024)),
		},
		{
			name:  "description counted in characters",
			lines: skillDoc("name: llman-sdd-foo", "description: "+strings.Repeat("é", 1024)),
		},
		{
			name:  "no frontmatter",
			lines: []string{"<!-- llman-template-version: 1 -->", "name: llman-sdd-foo"},
			want:  []string{CodeSkillMissingFrontmatter},
		},
		{
			name:  "unterminated frontmatter",
			lines: []string{"---", "name: llman-sdd-foo"},
			want:  []string{CodeUnterminatedFrontmatter},
		},
	}
	rules := DefaultSkillRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findingCodes(rules.validateSkill(rel, tt.lines))
			if !slices.Equal(got, tt.want) {
				t.Errorf("validateSkill() codes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateSkillNameTooLong(t *testing.T) {
	name := strings.Repeat("a", 65)
	rel := fmt.Sprintf("skills/%s.md", name)
	rules := DefaultSkillRules()
	rules.Prefix = ""

	got := findingCodes(rules.validateSkill(rel, skillDoc("name: "+name, "description: x")))
	if !slices.Equal(got, []string{CodeSkillNameTooLong}) {
		t.Errorf("validateSkill() codes = %v, want [%s]", got, CodeSkillNameTooLong)
	}
}

func TestInspectFileReportsUnterminatedFrontmatterOnce(t *testing.T) {
	rules := DefaultSkillRules()
	res := rules.inspectFile("skills/llman-sdd-foo.md", []string{"---", "name: llman-sdd-foo"})
	if res.ok {
		t.Fatal("inspectFile() extracted a version from an unterminated frontmatter")
	}
	if got := findingCodes(res.findings); !slices.Equal(got, []string{CodeUnterminatedFrontmatter}) {
		t.Errorf("inspectFile() codes = %v, want one %s", got, CodeUnterminatedFrontmatter)
	}
}

func TestInspectFileSkillFindingsPrecedeVersionFindings(t *testing.T) {
	rules := DefaultSkillRules()
	res := rules.inspectFile("skills/llman-sdd-foo.md", []string{"# no header"})
	want := []string{CodeSkillMissingFrontmatter, CodeInvalidVersionHeader}
	if got := findingCodes(res.findings); !slices.Equal(got, want) {
		t.Errorf("inspectFile() codes = %v, want %v", got, want)
	}
}
