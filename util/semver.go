package util

import (
	"fmt"
	"strconv"
	"strings"
)

type Semver struct {
	Major      int
	Minor      int
	Patch      int
	Beta       bool
	Alpha      bool
	Prerelease int
}

// Parse reads a major.minor.patch version string with an optional
// -alpha.N or -beta.N suffix.
func Parse(semver string) (Semver, error) {
	s := Semver{}
	split := strings.Split(semver, ".")
	if len(split) < 3 {
		return Semver{}, fmt.Errorf("invalid version: %s", semver)
	}

	major, err := strconv.Atoi(split[0])
	if err != nil {
		return Semver{}, err
	}
	s.Major = major

	minor, err := strconv.Atoi(split[1])
	if err != nil {
		return Semver{}, err
	}
	s.Minor = minor

	patch := strings.Split(split[2], "-")
	patchNum, err := strconv.Atoi(patch[0])
	if err != nil {
		return Semver{}, err
	}
	s.Patch = patchNum

	if len(patch) > 1 {
		switch patch[1] {
		case "beta":
			s.Beta = true
		case "alpha":
			s.Alpha = true
		default:
			return Semver{}, fmt.Errorf("invalid prerelease type: %s", patch[1])
		}
		if len(split) < 4 {
			return Semver{}, fmt.Errorf("missing prerelease number: %s", semver)
		}
		prereleaseNum, err := strconv.Atoi(split[3])
		if err != nil {
			return Semver{}, err
		}
		s.Prerelease = prereleaseNum
	}

	return s, nil
}

func (s Semver) String() string {
	str := strconv.Itoa(s.Major) + "." + strconv.Itoa(s.Minor) + "." + strconv.Itoa(s.Patch)
	if s.Beta {
		str += "-beta." + strconv.Itoa(s.Prerelease)
	} else if s.Alpha {
		str += "-alpha." + strconv.Itoa(s.Prerelease)
	}
	return str
}
