package schema

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver"
)

// OptionsSpecVersion is the version of the lookup options document that this
// library implements.
// This value is prefixed with e.g. `st2kv-options-` so isn't itself valid semver.
var OptionsSpecVersion = "st2kv-options-1.0.0"

// Version represents the schema version of an object
type Version string

// Validate the provided schema version is present and adheres
// to semantic versioning
func (v Version) Validate() error {
	version := string(v)

	_, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid schema version %q: %v", version, err)
	}
	return nil
}

// CheckSupported validates the version and checks that it shares the major
// version of the options document implemented by this library.
func (v Version) CheckSupported() error {
	if err := v.Validate(); err != nil {
		return err
	}

	supported, err := GetSemver(OptionsSpecVersion)
	if err != nil {
		return err
	}
	sv, err := semver.NewVersion(string(supported))
	if err != nil {
		return err
	}
	c, err := semver.NewConstraint(fmt.Sprintf("^%d.0.0", sv.Major()))
	if err != nil {
		return err
	}

	given, _ := semver.NewVersion(string(v))
	if !c.Check(given) {
		return fmt.Errorf("unsupported schema version %q: this library implements %s", string(v), supported)
	}
	return nil
}

// GetSemver returns a proper semver Version from the provided string,
// trimming the non-semver prefix, e.g. st2kv-options-1.0.0 yields 1.0.0.
func GetSemver(schemaVersion string) (Version, error) {
	r := regexp.MustCompile("^st2kv-[a-z]+-(.*)")
	match := r.FindStringSubmatch(schemaVersion)
	if len(match) < 2 {
		return "", fmt.Errorf("no semver submatch for schemaVersion %q using regex %q", schemaVersion, r)
	}

	version := Version(match[1])
	err := version.Validate()
	if err != nil {
		return "", err
	}

	return version, nil
}
