package templates

import "fmt"

// Diagnostic codes. They are stable identifiers for machine-readable output.
const (
	CodeEmptyFile               = "empty_file"
	CodeUnterminatedFrontmatter = "unterminated_frontmatter"
	CodeMissingMetadataVersion  = "missing_metadata_version"
	CodeInvalidVersionHeader    = "invalid_version_header"
	CodeNoTemplates             = "no_templates"
	CodeMissingRoot             = "missing_template_root"
	CodeNoLocales               = "no_locale_dirs"
	CodeMissingTemplate         = "missing_template"
	CodeExtraTemplate           = "extra_template"
	CodeVersionMismatch         = "version_mismatch"

	CodeSkillMissingFrontmatter = "skill_missing_frontmatter"
	CodeSkillMissingName        = "skill_missing_name"
	CodeSkillNameTooLong        = "skill_name_too_long"
	CodeSkillInvalidName        = "skill_invalid_name"
	CodeSkillNameStem           = "skill_name_stem_mismatch"
	CodeSkillMissingDescription = "skill_missing_description"
	CodeSkillDescriptionTooLong = "skill_description_too_long"
)

// Diagnostic is one reported inconsistency or malformation.
type Diagnostic struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	if d.Path == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Path, d.Message)
}

// finding is a diagnostic that has not been attached to a path yet.
type finding struct {
	code    string
	message string
}

func (f finding) at(path string) Diagnostic {
	return Diagnostic{Path: path, Code: f.code, Message: f.message}
}
