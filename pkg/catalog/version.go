package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// VersionKind classifies a dataset revision.
type VersionKind uint8

const (
	Release VersionKind = iota + 1
	Snapshot
	PreRelease
)

func (k VersionKind) String() string {
	switch k {
	case Release:
		return "release"
	case Snapshot:
		return "snapshot"
	case PreRelease:
		return "pre-release"
	default:
		return "unknown"
	}
}

// Version identifies a game asset revision. Name is used verbatim in the
// remote dictionary path, so its casing must not be changed.
type Version struct {
	Name string
	Kind VersionKind
}

func (v Version) String() string {
	return v.Name
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v.Name == ""
}

// ErrUnknownVersion is returned for labels outside the version tables.
var ErrUnknownVersion = errors.New("unknown game version")

// DefaultVersion is the revision used when none is configured.
var DefaultVersion = Version{Name: "1.20.4", Kind: Release}

// Releases lists stable game releases, newest first.
var Releases = []Version{
	{Name: "1.21", Kind: Release},
	{Name: "1.20.6", Kind: Release},
	{Name: "1.20.5", Kind: Release},
	{Name: "1.20.4", Kind: Release},
	{Name: "1.20.3", Kind: Release},
	{Name: "1.20.2", Kind: Release},
	{Name: "1.20.1", Kind: Release},
	{Name: "1.20", Kind: Release},
	{Name: "1.19.4", Kind: Release},
	{Name: "1.19.3", Kind: Release},
	{Name: "1.19.2", Kind: Release},
	{Name: "1.19.1", Kind: Release},
	{Name: "1.19", Kind: Release},
	{Name: "1.18.2", Kind: Release},
	{Name: "1.18.1", Kind: Release},
	{Name: "1.18", Kind: Release},
	{Name: "1.17.1", Kind: Release},
	{Name: "1.17", Kind: Release},
	{Name: "1.16.5", Kind: Release},
	{Name: "1.16.4", Kind: Release},
	{Name: "1.16.3", Kind: Release},
	{Name: "1.16.2", Kind: Release},
	{Name: "1.16.1", Kind: Release},
	{Name: "1.16", Kind: Release},
	{Name: "1.15.2", Kind: Release},
	{Name: "1.15.1", Kind: Release},
	{Name: "1.15", Kind: Release},
	{Name: "1.14.4", Kind: Release},
	{Name: "1.14.3", Kind: Release},
	{Name: "1.14.2", Kind: Release},
	{Name: "1.14.1", Kind: Release},
	{Name: "1.14", Kind: Release},
	{Name: "1.13.2", Kind: Release},
	{Name: "1.13.1", Kind: Release},
	{Name: "1.13", Kind: Release},
	{Name: "1.12.2", Kind: Release},
	{Name: "1.12.1", Kind: Release},
	{Name: "1.12", Kind: Release},
	{Name: "1.11.2", Kind: Release},
	{Name: "1.11.1", Kind: Release},
	{Name: "1.11", Kind: Release},
	{Name: "1.10.2", Kind: Release},
	{Name: "1.10.1", Kind: Release},
	{Name: "1.10", Kind: Release},
	{Name: "1.9.4", Kind: Release},
	{Name: "1.9.3", Kind: Release},
	{Name: "1.9.2", Kind: Release},
	{Name: "1.9.1", Kind: Release},
	{Name: "1.9", Kind: Release},
	{Name: "1.8.9", Kind: Release},
	{Name: "1.8.8", Kind: Release},
	{Name: "1.8.7", Kind: Release},
	{Name: "1.8.6", Kind: Release},
	{Name: "1.8.5", Kind: Release},
	{Name: "1.8.4", Kind: Release},
	{Name: "1.8.3", Kind: Release},
	{Name: "1.8.2", Kind: Release},
	{Name: "1.8.1", Kind: Release},
	{Name: "1.8", Kind: Release},
	{Name: "1.7.10", Kind: Release},
	{Name: "1.7.9", Kind: Release},
	{Name: "1.7.8", Kind: Release},
	{Name: "1.7.7", Kind: Release},
	{Name: "1.7.6", Kind: Release},
	{Name: "1.7.5", Kind: Release},
	{Name: "1.7.4", Kind: Release},
	{Name: "1.7.3", Kind: Release},
	{Name: "1.7.2", Kind: Release},
	{Name: "1.6.4", Kind: Release},
	{Name: "1.6.2", Kind: Release},
	{Name: "1.6.1", Kind: Release},
	{Name: "1.5.2", Kind: Release},
	{Name: "1.5.1", Kind: Release},
	{Name: "1.4.7", Kind: Release},
	{Name: "1.4.6", Kind: Release},
	{Name: "1.4.5", Kind: Release},
	{Name: "1.4.4", Kind: Release},
	{Name: "1.4.3", Kind: Release},
	{Name: "1.4.2", Kind: Release},
	{Name: "1.3.2", Kind: Release},
	{Name: "1.3.1", Kind: Release},
	{Name: "1.2.5", Kind: Release},
	{Name: "1.2.4", Kind: Release},
	{Name: "1.2.3", Kind: Release},
	{Name: "1.2.2", Kind: Release},
	{Name: "1.2.1", Kind: Release},
	{Name: "1.1", Kind: Release},
	{Name: "1.0", Kind: Release},
}

// Snapshots lists weekly development snapshots.
var Snapshots = []Version{
	{Name: "24w21a", Kind: Snapshot},
	{Name: "24w20a", Kind: Snapshot},
	{Name: "20w11a", Kind: Snapshot},
	{Name: "20w07a", Kind: Snapshot},
	{Name: "24w18a", Kind: Snapshot},
	{Name: "24w14a", Kind: Snapshot},
	{Name: "24w13a", Kind: Snapshot},
	{Name: "24w11a", Kind: Snapshot},
	{Name: "24w10a", Kind: Snapshot},
	{Name: "24w09a", Kind: Snapshot},
	{Name: "24w07a", Kind: Snapshot},
	{Name: "24w06a", Kind: Snapshot},
	{Name: "24w05b", Kind: Snapshot},
	{Name: "24w05a", Kind: Snapshot},
	{Name: "23w51b", Kind: Snapshot},
	{Name: "23w46a", Kind: Snapshot},
	{Name: "23w42a", Kind: Snapshot},
	{Name: "23w41a", Kind: Snapshot},
	{Name: "23w35a", Kind: Snapshot},
	{Name: "23w33a", Kind: Snapshot},
	{Name: "23w32a", Kind: Snapshot},
	{Name: "23w31a", Kind: Snapshot},
	{Name: "23w18a", Kind: Snapshot},
	{Name: "23w14a", Kind: Snapshot},
	{Name: "23w13a", Kind: Snapshot},
	{Name: "23w12a", Kind: Snapshot},
	{Name: "23w07a", Kind: Snapshot},
	{Name: "23w06a", Kind: Snapshot},
	{Name: "23w05a", Kind: Snapshot},
	{Name: "23w04a", Kind: Snapshot},
	{Name: "22w46a", Kind: Snapshot},
	{Name: "22w45a", Kind: Snapshot},
	{Name: "22w44a", Kind: Snapshot},
	{Name: "22w43a", Kind: Snapshot},
	{Name: "22w42a", Kind: Snapshot},
	{Name: "22w18a", Kind: Snapshot},
	{Name: "22w17a", Kind: Snapshot},
	{Name: "22w16b", Kind: Snapshot},
	{Name: "22w15a", Kind: Snapshot},
	{Name: "22w14a", Kind: Snapshot},
	{Name: "22w12a", Kind: Snapshot},
	{Name: "22w11a", Kind: Snapshot},
	{Name: "22w07a", Kind: Snapshot},
	{Name: "22w06a", Kind: Snapshot},
	{Name: "22w05a", Kind: Snapshot},
	{Name: "22w03a", Kind: Snapshot},
	{Name: "21w44a", Kind: Snapshot},
	{Name: "21w43a", Kind: Snapshot},
	{Name: "21w42a", Kind: Snapshot},
	{Name: "21w41a", Kind: Snapshot},
	{Name: "21w39a", Kind: Snapshot},
	{Name: "21w37a", Kind: Snapshot},
	{Name: "21w20a", Kind: Snapshot},
	{Name: "21w19a", Kind: Snapshot},
	{Name: "21w18a", Kind: Snapshot},
	{Name: "21w17a", Kind: Snapshot},
	{Name: "21w16a", Kind: Snapshot},
	{Name: "21w15a", Kind: Snapshot},
	{Name: "21w14a", Kind: Snapshot},
	{Name: "21w13a", Kind: Snapshot},
	{Name: "13w43a", Kind: Snapshot},
	{Name: "13w37a", Kind: Snapshot},
	{Name: "18w45a", Kind: Snapshot},
	{Name: "18w44a", Kind: Snapshot},
	{Name: "21W10A", Kind: Snapshot},
	{Name: "21W08B", Kind: Snapshot},
	{Name: "21W08A", Kind: Snapshot},
	{Name: "21W07A", Kind: Snapshot},
	{Name: "19W14B", Kind: Snapshot},
	{Name: "21w06a", Kind: Snapshot},
	{Name: "21w05a", Kind: Snapshot},
	{Name: "21w03a", Kind: Snapshot},
	{Name: "20w51a", Kind: Snapshot},
	{Name: "20w49a", Kind: Snapshot},
	{Name: "20w48a", Kind: Snapshot},
	{Name: "20w46a", Kind: Snapshot},
	{Name: "20w45a", Kind: Snapshot},
	{Name: "20w30a", Kind: Snapshot},
	{Name: "20w29a", Kind: Snapshot},
	{Name: "20w28a", Kind: Snapshot},
	{Name: "20w27a", Kind: Snapshot},
	{Name: "20w22a", Kind: Snapshot},
	{Name: "20w21a", Kind: Snapshot},
	{Name: "20w20a", Kind: Snapshot},
	{Name: "20w19a", Kind: Snapshot},
	{Name: "20w18a", Kind: Snapshot},
	{Name: "20w17a", Kind: Snapshot},
	{Name: "20w16a", Kind: Snapshot},
	{Name: "20w14a", Kind: Snapshot},
	{Name: "20w15a", Kind: Snapshot},
	{Name: "20w10a", Kind: Snapshot},
	{Name: "20w09a", Kind: Snapshot},
	{Name: "20w06a", Kind: Snapshot},
	{Name: "19w39a", Kind: Snapshot},
	{Name: "19w38a", Kind: Snapshot},
	{Name: "19w37a", Kind: Snapshot},
	{Name: "19w36a", Kind: Snapshot},
	{Name: "19w35a", Kind: Snapshot},
	{Name: "19w09a", Kind: Snapshot},
	{Name: "19w08a", Kind: Snapshot},
	{Name: "18w50a", Kind: Snapshot},
	{Name: "18w02a", Kind: Snapshot},
	{Name: "17w18b", Kind: Snapshot},
	{Name: "17w17a", Kind: Snapshot},
	{Name: "17w16a", Kind: Snapshot},
	{Name: "17w15a", Kind: Snapshot},
	{Name: "17w14a", Kind: Snapshot},
	{Name: "17w13b", Kind: Snapshot},
	{Name: "17w13a", Kind: Snapshot},
	{Name: "17w06a", Kind: Snapshot},
	{Name: "16w32b", Kind: Snapshot},
	{Name: "16w33a", Kind: Snapshot},
	{Name: "16w35a", Kind: Snapshot},
	{Name: "16w36a", Kind: Snapshot},
	{Name: "16w38a", Kind: Snapshot},
	{Name: "16w39c", Kind: Snapshot},
	{Name: "16w40a", Kind: Snapshot},
	{Name: "16w41a", Kind: Snapshot},
	{Name: "16w42a", Kind: Snapshot},
	{Name: "16w43a", Kind: Snapshot},
	{Name: "16w44a", Kind: Snapshot},
	{Name: "16w50a", Kind: Snapshot},
}

// PreReleases lists pre-release and release-candidate builds.
var PreReleases = []Version{
	{Name: "1.21.1-rc1", Kind: PreRelease},
	{Name: "1.21-pre3", Kind: PreRelease},
	{Name: "1.21-pre1", Kind: PreRelease},
	{Name: "1.20.5-pre3", Kind: PreRelease},
	{Name: "1.20.5-rc1", Kind: PreRelease},
	{Name: "1.20.5-rc2", Kind: PreRelease},
	{Name: "1.20.5-pre4", Kind: PreRelease},
	{Name: "1.20.5-pre1", Kind: PreRelease},
	{Name: "1.20.4-rc1", Kind: PreRelease},
	{Name: "1.20.3-rc1", Kind: PreRelease},
	{Name: "1.20.3-pre2", Kind: PreRelease},
	{Name: "1.20.2-pre4", Kind: PreRelease},
	{Name: "1.20.2-pre1", Kind: PreRelease},
	{Name: "1.20-rc1", Kind: PreRelease},
	{Name: "1.20-pre5", Kind: PreRelease},
	{Name: "1.20-pre2", Kind: PreRelease},
	{Name: "1.20-pre1", Kind: PreRelease},
	{Name: "1.19.4-pre4", Kind: PreRelease},
	{Name: "1.19.4-pre3", Kind: PreRelease},
	{Name: "1.19.4-pre1", Kind: PreRelease},
	{Name: "1.19.3-pre3", Kind: PreRelease},
	{Name: "1.19.3-pre2", Kind: PreRelease},
	{Name: "1.19.1-rc3", Kind: PreRelease},
	{Name: "1.19.1-pre5", Kind: PreRelease},
	{Name: "1.19.1-pre4", Kind: PreRelease},
	{Name: "1.19.1-pre3", Kind: PreRelease},
	{Name: "1.19.1-rc1", Kind: PreRelease},
	{Name: "1.19.1-pre1", Kind: PreRelease},
	{Name: "1.19-rc2", Kind: PreRelease},
	{Name: "1.19-rc1", Kind: PreRelease},
	{Name: "1.19-pre5", Kind: PreRelease},
	{Name: "1.19-pre3", Kind: PreRelease},
	{Name: "1.19-pre1", Kind: PreRelease},
	{Name: "1.18.2-pre3", Kind: PreRelease},
	{Name: "1.18.1-rc2", Kind: PreRelease},
	{Name: "1.18-pre8", Kind: PreRelease},
	{Name: "1.18-pre3", Kind: PreRelease},
	{Name: "1.17.1-pre3", Kind: PreRelease},
	{Name: "1.17.1-pre1", Kind: PreRelease},
	{Name: "1.17-pre4", Kind: PreRelease},
	{Name: "1.17-pre3", Kind: PreRelease},
	{Name: "1.17-pre2", Kind: PreRelease},
	{Name: "1.17-pre1", Kind: PreRelease},
	{Name: "1.16.5-rc1", Kind: PreRelease},
	{Name: "1.16.4-rc1", Kind: PreRelease},
	{Name: "1.16.4-pre1", Kind: PreRelease},
	{Name: "1.16.3-rc1", Kind: PreRelease},
	{Name: "1.16.2-rc2", Kind: PreRelease},
	{Name: "1.16.2-pre2", Kind: PreRelease},
	{Name: "1.16.2-pre1", Kind: PreRelease},
	{Name: "1.16-pre8", Kind: PreRelease},
	{Name: "1.16-pre5", Kind: PreRelease},
	{Name: "1.16-pre3", Kind: PreRelease},
	{Name: "1.16-pre2", Kind: PreRelease},
	{Name: "1.15.1-pre1", Kind: PreRelease},
	{Name: "1.14.4-pre7", Kind: PreRelease},
	{Name: "1.12-pre5", Kind: PreRelease},
	{Name: "1.12-pre2", Kind: PreRelease},
}

// ParseVersion looks a label up across releases, snapshots and pre-releases.
// An exact match wins; otherwise the first case-insensitive match is returned.
func ParseVersion(name string) (Version, error) {
	name = strings.TrimSpace(name)
	var folded Version
	for _, table := range [][]Version{Releases, Snapshots, PreReleases} {
		for _, v := range table {
			if v.Name == name {
				return v, nil
			}
			if folded.IsZero() && strings.EqualFold(v.Name, name) {
				folded = v
			}
		}
	}
	if !folded.IsZero() {
		return folded, nil
	}
	return Version{}, fmt.Errorf("%w: %q", ErrUnknownVersion, name)
}
