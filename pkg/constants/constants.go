// Package constants provides shared constants used throughout the nodeup project
package constants

// Operating system identifiers
const (
	// WindowsOS represents the Windows operating system string
	WindowsOS = "windows"
	// LinuxOS represents the Linux operating system string
	LinuxOS = "linux"
	// DarwinOS represents the macOS/Darwin operating system string
	DarwinOS = "darwin"
)

// Well-known host paths
const (
	// OSReleasePath is the standard location of the os-release metadata file
	OSReleasePath = "/etc/os-release"
)

// Target runtime executables
const (
	// NodeExecutable is the Node.js runtime binary probed for presence
	NodeExecutable = "node"
	// NpmExecutable is the npm binary probed by the doctor command
	NpmExecutable = "npm"
)
