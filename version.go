package gogeometry

import "fmt"

// Version information for the GoGeometry library.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Version is the full version string of the GoGeometry library.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
