package noderuntime

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"
)

// versionPattern matches the "v18.19.0" shape printed by node --version
var versionPattern = regexp2.MustCompile(`^v?(?<major>\d+)\.(?<minor>\d+)\.(?<patch>\d+)$`, regexp2.None)

// Version is a parsed runtime version
type Version struct {
	Raw   string
	Major int
	Minor int
	Patch int
}

// String returns the canonical v-prefixed form
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses a version-query output line into a Version. The raw
// string is kept alongside the numeric components.
func ParseVersion(raw string) (Version, error) {
	m, err := versionPattern.FindStringMatch(raw)
	if err != nil || m == nil {
		return Version{}, fmt.Errorf("unrecognized version string: %q", raw)
	}

	v := Version{Raw: raw}
	v.Major, _ = strconv.Atoi(m.GroupByName("major").String())
	v.Minor, _ = strconv.Atoi(m.GroupByName("minor").String())
	v.Patch, _ = strconv.Atoi(m.GroupByName("patch").String())
	return v, nil
}
