package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

const templatePattern = "**/*.md"

// fileCheck is the outcome of inspecting one template file.
type fileCheck struct {
	version  string
	ok       bool
	findings []finding
}

// inspectFile runs the skill checks and the version extraction over a single
// read of the file. An unterminated frontmatter is reported once.
func (r SkillRules) inspectFile(relPath string, lines []string) fileCheck {
	var res fileCheck
	if r.IsSkillTemplate(relPath) {
		res.findings = r.validateSkill(relPath, lines)
	}
	f, version, ok := extractVersion(lines)
	if !ok {
		if f != unterminatedFrontmatter || !slices.Contains(res.findings, unterminatedFrontmatter) {
			res.findings = append(res.findings, f)
		}
		return res
	}
	res.version = version
	res.ok = true
	return res
}

// ListTemplates returns the slash-separated paths of every markdown template
// below fsys, ordered component by component.
func ListTemplates(fsys fs.FS) ([]string, error) {
	paths, err := doublestar.Glob(fsys, templatePattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, err
	}
	slices.SortFunc(paths, comparePaths)
	return paths, nil
}

func comparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}

// LocaleVersions maps a template's path relative to its locale directory to
// its declared version.
type LocaleVersions map[string]string

// CollectVersions inspects every template of one locale directory. dir is the
// on-disk directory and display is the path used in diagnostics. Files whose
// version cannot be extracted are left out of the returned map.
func (r SkillRules) CollectVersions(dir, display string) (LocaleVersions, []Diagnostic, error) {
	fsys := os.DirFS(dir)
	rels, err := ListTemplates(fsys)
	if err != nil {
		return nil, nil, fmt.Errorf("list templates in %s: %w", display, err)
	}

	versions := make(LocaleVersions, len(rels))
	var diags []Diagnostic
	for _, rel := range rels {
		data, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path.Join(display, rel), err)
		}
		if !utf8.Valid(data) {
			return nil, nil, fmt.Errorf("read %s: content is not valid UTF-8", path.Join(display, rel))
		}

		res := r.inspectFile(rel, SplitLines(string(data)))
		for _, f := range res.findings {
			diags = append(diags, f.at(path.Join(display, rel)))
		}
		if res.ok {
			versions[rel] = res.version
		}
	}

	if len(versions) == 0 {
		diags = append(diags, finding{CodeNoTemplates, "no markdown templates found"}.at(display))
	}
	return versions, diags, nil
}
