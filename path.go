package smlogic

import "strings"

// Path grammar: scheme[/slot[/sector]]. A missing slot name falls back to
// the reserved default slot name, a missing sector name to the whole-slot
// sector.
const (
	// PathSep separates path segments. Scheme, slot and bind names must
	// not contain it.
	PathSep = "/"

	// DefaultSlot is the reserved slot name used when a path omits the
	// slot segment. Single-shape schemes expose their slots under it.
	DefaultSlot = "_"

	// WholeSlot is the reserved sector name denoting the slot itself.
	WholeSlot = ""
)

// splitPath splits a connection target path into its three segments,
// filling in the defaults for missing ones. Anything after the second
// separator belongs to the sector name.
func splitPath(path string) (scheme, slot, sector string) {
	scheme, rest, ok := strings.Cut(path, PathSep)
	if !ok {
		return scheme, DefaultSlot, WholeSlot
	}
	slot, sector, ok = strings.Cut(rest, PathSep)
	if slot == "" {
		slot = DefaultSlot
	}
	if !ok {
		return scheme, slot, WholeSlot
	}
	return scheme, slot, sector
}

// validName rejects names that would break path resolution: empty names
// and names containing the separator.
func validName(name string) bool {
	return name != "" && !strings.Contains(name, PathSep)
}
