package templates

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// RootResult is the outcome of checking one template root.
type RootResult struct {
	Root        string       `json:"root" yaml:"root"`
	Baseline    string       `json:"baseline,omitempty" yaml:"baseline,omitempty"`
	Locales     []string     `json:"locales" yaml:"locales"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// Checker compares the locales of template roots below a repository root.
type Checker struct {
	// RepoRoot is the directory template roots are resolved against.
	RepoRoot string
	// Baseline is the preferred baseline locale.
	Baseline string
	Skills   SkillRules
}

// Resolve returns the on-disk path of a root-relative path.
func (c *Checker) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.RepoRoot, filepath.FromSlash(rel))
}

// RootExists reports whether the template root is an existing directory.
func (c *Checker) RootExists(root string) bool {
	info, err := os.Stat(c.Resolve(root))
	return err == nil && info.IsDir()
}

// DiscoverLocales returns the locale directory names under root, sorted.
func (c *Checker) DiscoverLocales(root string) ([]string, error) {
	dir := c.Resolve(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var locales []string
	for _, entry := range entries {
		// Stat follows symlinked locale directories; dangling links are skipped.
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err == nil && info.IsDir() {
			locales = append(locales, entry.Name())
		}
	}
	sort.Strings(locales)
	return locales, nil
}

// ChooseBaseline picks the preferred locale when present, otherwise the first
// locale in sorted order.
func ChooseBaseline(locales []string, preferred string) string {
	if len(locales) == 0 {
		return ""
	}
	for _, l := range locales {
		if l == preferred {
			return l
		}
	}
	return locales[0]
}

// CompareRoot checks every locale of root against the baseline locale.
func (c *Checker) CompareRoot(root string) (*RootResult, error) {
	res := &RootResult{Root: root}
	if !c.RootExists(root) {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Path:    root,
			Code:    CodeMissingRoot,
			Message: "template root not found",
		})
		return res, nil
	}

	locales, err := c.DiscoverLocales(root)
	if err != nil {
		return nil, fmt.Errorf("read template root %s: %w", root, err)
	}
	if len(locales) == 0 {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Path:    root,
			Code:    CodeNoLocales,
			Message: "no locale directories found",
		})
		return res, nil
	}
	res.Locales = locales
	res.Baseline = ChooseBaseline(locales, c.Baseline)

	baseDisplay := path.Join(root, res.Baseline)
	base, diags, err := c.Skills.CollectVersions(c.Resolve(baseDisplay), baseDisplay)
	if err != nil {
		return nil, err
	}
	res.Diagnostics = append(res.Diagnostics, diags...)

	for _, locale := range locales {
		if locale == res.Baseline {
			continue
		}
		display := path.Join(root, locale)
		versions, diags, err := c.Skills.CollectVersions(c.Resolve(display), display)
		if err != nil {
			return nil, err
		}
		res.Diagnostics = append(res.Diagnostics, diags...)
		res.Diagnostics = append(res.Diagnostics, compareLocale(display, res.Baseline, base, versions)...)
	}
	return res, nil
}

// compareLocale reports templates missing from, extra in, or versioned
// differently in one locale relative to the baseline.
func compareLocale(display, baseline string, base, other LocaleVersions) []Diagnostic {
	var diags []Diagnostic
	for _, rel := range sortedKeys(base) {
		if _, ok := other[rel]; !ok {
			diags = append(diags, Diagnostic{
				Path:    path.Join(display, rel),
				Code:    CodeMissingTemplate,
				Message: fmt.Sprintf("missing template (expected %s)", rel),
			})
		}
	}
	for _, rel := range sortedKeys(other) {
		if _, ok := base[rel]; !ok {
			diags = append(diags, Diagnostic{
				Path:    path.Join(display, rel),
				Code:    CodeExtraTemplate,
				Message: fmt.Sprintf("extra template (not in %s)", baseline),
			})
		}
	}
	for _, rel := range sortedKeys(base) {
		v, ok := other[rel]
		if ok && v != base[rel] {
			diags = append(diags, Diagnostic{
				Path:    path.Join(display, rel),
				Code:    CodeVersionMismatch,
				Message: fmt.Sprintf("version %s does not match %s version %s", v, baseline, base[rel]),
			})
		}
	}
	return diags
}

func sortedKeys(m LocaleVersions) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
