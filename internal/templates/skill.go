package templates

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

var skillNameRE = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// SkillRules identifies skill templates and bounds their metadata.
type SkillRules struct {
	// Dir is the name of the immediate parent directory of a skill template.
	Dir string
	// Prefix is the filename prefix of a skill template.
	Prefix string
	// MaxNameLen and MaxDescriptionLen are measured in characters.
	MaxNameLen        int
	MaxDescriptionLen int
}

// DefaultSkillRules returns the rules for llman SDD skill templates.
func DefaultSkillRules() SkillRules {
	return SkillRules{
		Dir:               "skills",
		Prefix:            "llman-sdd-",
		MaxNameLen:        64,
		MaxDescriptionLen: 1024,
	}
}

// IsSkillTemplate reports whether the slash-separated relative path names a
// skill template.
func (r SkillRules) IsSkillTemplate(relPath string) bool {
	dir, file := path.Split(relPath)
	return path.Base(dir) == r.Dir && strings.HasPrefix(file, r.Prefix)
}

// validateSkill checks skill metadata. Every check runs independently so a
// single pass reports every problem with the file.
func (r SkillRules) validateSkill(relPath string, lines []string) []finding {
	if !hasFrontmatter(lines) {
		return []finding{{CodeSkillMissingFrontmatter, "skill template missing YAML frontmatter"}}
	}
	fields, ok := ParseFrontmatter(lines)
	if !ok {
		return []finding{unterminatedFrontmatter}
	}

	var out []finding
	name := strings.TrimSpace(fields["name"])
	if name == "" {
		out = append(out, finding{CodeSkillMissingName, "skill frontmatter missing name"})
	} else {
		if utf8.RuneCountInString(name) > r.MaxNameLen {
			out = append(out, finding{CodeSkillNameTooLong,
				fmt.Sprintf("skill name must be <= %d characters", r.MaxNameLen)})
		}
		if !skillNameRE.MatchString(name) {
			out = append(out, finding{CodeSkillInvalidName,
				fmt.Sprintf("skill name %q must match %s", name, skillNameRE.String())})
		}
		stem := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
		if name != stem {
			out = append(out, finding{CodeSkillNameStem,
				fmt.Sprintf("skill name %q must match file stem %q", name, stem)})
		}
	}

	desc := strings.TrimSpace(fields["description"])
	if desc == "" {
		out = append(out, finding{CodeSkillMissingDescription, "skill frontmatter missing description"})
	} else if utf8.RuneCountInString(desc) > r.MaxDescriptionLen {
		out = append(out, finding{CodeSkillDescriptionTooLong,
			fmt.Sprintf("skill description must be <= %d characters", r.MaxDescriptionLen)})
	}
	return out
}
