package model

// ManifestVersion is bumped whenever the manifest layout changes.
const ManifestVersion = 1

// Manifest records how an artifact was produced so it can be verified later.
type Manifest struct {
	Version     int             `yaml:"version"`
	Output      Path            `yaml:"output"`
	Seed        uint64          `yaml:"seed"`
	Target      int             `yaml:"target_count"`
	Bytes       int64           `yaml:"bytes"`
	SHA256      string          `yaml:"sha256"`
	RandomDraws uint64          `yaml:"random_draws"`
	Generators  []GeneratorSpec `yaml:"generators"`
}

// VerifyIssue describes a single line of an artifact that failed a check.
type VerifyIssue struct {
	Line   int
	Text   string
	Reason string
}

// VerifyResult is the outcome of re-reading an artifact.
type VerifyResult struct {
	Output       Path
	Lines        int
	Expected     int
	FromManifest bool // seed, count and hash were read from the manifest
	HashOK       bool
	Issues       []VerifyIssue
}

// OK reports whether the artifact passed every check.
func (r VerifyResult) OK() bool {
	return len(r.Issues) == 0 && r.Lines == r.Expected && r.HashOK
}
