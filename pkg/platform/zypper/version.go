package zypper

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

var versionToken = regexp.MustCompile(`\d+\.\d+\.\d+`)

// ParseVersion extracts the first N.N.N token from the output of
// `zypper --version`.
func ParseVersion(output string) (*semver.Version, error) {
	token := versionToken.FindString(output)
	if token == "" {
		return nil, errors.Errorf("no version found in %q", output)
	}
	v, err := semver.NewVersion(token)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse version %q", token)
	}
	return v, nil
}
