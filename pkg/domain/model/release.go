package model

import "strings"

// Channel is the release track a build belongs to
type Channel string

const (
	ChannelProduction Channel = "production"
	ChannelBeta       Channel = "beta"
	ChannelTest       Channel = "test"
)

// Publishable reports whether builds on this channel may be released
func (c Channel) Publishable() bool {
	switch c {
	case ChannelProduction, ChannelBeta, ChannelTest:
		return true
	default:
		return false
	}
}

// ReleaseMeta is the read-only release metadata resolved by the
// metadata provider. CurrentSHA comes from the CI environment while the
// rest is declared by the release manifest.
type ReleaseMeta struct {
	Version    string
	Channel    Channel
	ReleaseSHA string // commit hash of the authorized release point
	CurrentSHA string // commit hash the CI run is building
	Branch     string
	Stats      BundleStats
}

// BundleStats holds byte counts of the built application components,
// reported for monitoring
type BundleStats struct {
	RendererBundleSize int64
	MainBundleSize     int64
}

// AtReleasePoint reports whether the current commit is the authorized
// release point. The release SHA may be abbreviated, so the check is a
// case-insensitive prefix match.
func (m *ReleaseMeta) AtReleasePoint() bool {
	if m.ReleaseSHA == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(m.CurrentSHA), strings.ToLower(m.ReleaseSHA))
}

// ShortSHA returns the first 8 characters of the current commit hash,
// used in object storage keys
func (m *ReleaseMeta) ShortSHA() string {
	if len(m.CurrentSHA) > 8 {
		return m.CurrentSHA[:8]
	}
	return m.CurrentSHA
}
