// Package about reads the project metadata embedded in the binary.
package about

import (
	"unitgrader"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
)

// Info is the project metadata.
type Info struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	FeedbackURL string `toml:"feedback_url"`
}

// Load parses the embedded metadata.
func Load() (Info, error) {
	return Parse(unitgrader.About)
}

// Parse decodes metadata from raw TOML. Name and version are required.
func Parse(raw []byte) (Info, error) {
	var info Info
	if _, err := toml.Decode(string(raw), &info); err != nil {
		return Info{}, errors.Wrap(err, "unable to get version information")
	}
	if info.Name == "" || info.Version == "" {
		return Info{}, errors.New("unable to get version information: name and version are required")
	}

	return info, nil
}
