package plan

// Plan is a fully resolved set of scaffolding steps.
type Plan struct {
	// Requires is an optional semver constraint on the CLI version.
	Requires string     `yaml:"requires,omitempty"`
	Clean    []string   `yaml:"clean,omitempty"`
	Copy     []CopyStep `yaml:"copy,omitempty"`
	Download []Asset    `yaml:"download,omitempty"`
}

// CopyStep copies a template tree (or single file) into the project.
type CopyStep struct {
	From      string   `yaml:"from"`
	To        string   `yaml:"to,omitempty"`
	Exclude   []string `yaml:"exclude,omitempty"`
	Overwrite bool     `yaml:"overwrite,omitempty"`
}

// Asset is a remote file fetched into the project.
type Asset struct {
	URL        string `yaml:"url"`
	To         string `yaml:"to"`
	Executable bool   `yaml:"executable,omitempty"`
}

// Empty reports whether the plan has nothing to do.
func (p *Plan) Empty() bool {
	return len(p.Clean) == 0 && len(p.Copy) == 0 && len(p.Download) == 0
}
