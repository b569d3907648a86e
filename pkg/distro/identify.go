// Package distro identifies the host Linux distribution from os-release
// metadata. Identification failure is an expected state, not an error: an
// unreadable or malformed file yields an unknown Info, which downstream
// routes to the distribution-agnostic fallback installation path.
package distro

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/blairham/nodeup/pkg/constants"
)

// Info describes the host distribution, derived once per run and never
// mutated after parsing
type Info struct {
	// ID is the lower-cased os-release ID value; empty when unknown
	ID string
	// IDLike holds the lower-cased whitespace-split ID_LIKE tokens
	IDLike []string
	// DisplayName is the human-readable NAME value
	DisplayName string
}

// Unknown reports whether identification failed or produced no usable ID
func (i Info) Unknown() bool {
	return i.ID == ""
}

// LikeAny reports whether any ID_LIKE token matches one of the given ids
func (i Info) LikeAny(ids ...string) bool {
	for _, like := range i.IDLike {
		for _, id := range ids {
			if like == id {
				return true
			}
		}
	}
	return false
}

// Identifier reads and parses host os-release metadata
type Identifier struct {
	path string
}

// NewIdentifier creates an identifier reading the standard os-release path
func NewIdentifier() *Identifier {
	return &Identifier{path: constants.OSReleasePath}
}

// NewIdentifierWithPath creates an identifier reading a custom metadata path
func NewIdentifierWithPath(path string) *Identifier {
	return &Identifier{path: path}
}

// Identify parses the os-release file into an Info. Read failures return the
// unknown Info rather than an error.
func (d *Identifier) Identify() Info {
	content, err := os.ReadFile(d.path)
	if err != nil {
		log.Debug("cannot read os-release metadata", "path", d.path, "err", err)
		return Info{DisplayName: "Unknown"}
	}

	fields := parseOSRelease(string(content))

	info := Info{
		ID:          strings.ToLower(fields["ID"]),
		DisplayName: fields["NAME"],
	}
	if info.DisplayName == "" {
		info.DisplayName = "Unknown"
	}
	if like := strings.ToLower(fields["ID_LIKE"]); like != "" {
		info.IDLike = strings.Fields(like)
	}

	return info
}

// parseOSRelease parses key="value" lines. Lines without '=' are ignored;
// values keep everything after the first '=' with surrounding quotes stripped.
func parseOSRelease(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"`)
		fields[key] = value
	}
	return fields
}
