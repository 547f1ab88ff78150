// Package templates checks that localized SDD templates stay in sync: every
// locale offers the same template files, each declares a version header, and
// matching files across locales declare the same version. Skill templates are
// additionally checked for well-formed name and description metadata.
package templates

// Result aggregates the checks of the primary root and, when it exists on
// disk, the legacy root.
type Result struct {
	Primary *RootResult `json:"primary" yaml:"primary"`
	// Legacy is nil when no legacy root was processed.
	Legacy      *RootResult  `json:"legacy,omitempty" yaml:"legacy,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// Passed reports whether the run produced no diagnostics.
func (r *Result) Passed() bool {
	return len(r.Diagnostics) == 0
}

// Run checks the primary root unconditionally and the legacy root only when it
// exists. A missing legacy root is not a diagnostic. Roots are checked
// independently of each other. An empty legacy path disables the legacy check.
func (c *Checker) Run(primary, legacy string) (*Result, error) {
	res := &Result{}

	p, err := c.CompareRoot(primary)
	if err != nil {
		return nil, err
	}
	res.Primary = p
	res.Diagnostics = append(res.Diagnostics, p.Diagnostics...)

	if legacy != "" && c.RootExists(legacy) {
		l, err := c.CompareRoot(legacy)
		if err != nil {
			return nil, err
		}
		res.Legacy = l
		res.Diagnostics = append(res.Diagnostics, l.Diagnostics...)
	}
	return res, nil
}
