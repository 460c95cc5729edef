package manifest

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
)

// document is the on-disk shape of the release manifest written by the
// build pipeline
type document struct {
	Version    string    `toml:"version"`
	Channel    string    `toml:"channel"`
	ReleaseSHA string    `toml:"release_sha"`
	Branch     string    `toml:"branch"`
	Stats      stats     `toml:"stats"`
	Artifacts  artifacts `toml:"artifacts"`
}

type stats struct {
	RendererBundleSize int64 `toml:"renderer_bundle_size"`
	MainBundleSize     int64 `toml:"main_bundle_size"`
}

type artifacts struct {
	Darwin  darwinArtifacts  `toml:"darwin"`
	Windows windowsArtifacts `toml:"win32"`
}

type darwinArtifacts struct {
	Archive string `toml:"archive"`
}

type windowsArtifacts struct {
	Installer  string `toml:"installer"`
	Standalone string `toml:"standalone"`
	Package    string `toml:"package"`
	Delta      string `toml:"delta"` // optional
}

// Provider resolves release metadata from a TOML manifest, overlaid
// with values only the CI environment knows (current commit, branch)
type Provider struct {
	doc        document
	currentSHA string
	branch     string
}

// Option is a functional option for Provider configuration
type Option func(*Provider)

// WithCurrentSHA sets the commit hash the CI run is building
func WithCurrentSHA(sha string) Option {
	return func(p *Provider) {
		p.currentSHA = sha
	}
}

// WithBranch overrides the branch name from the manifest
func WithBranch(branch string) Option {
	return func(p *Provider) {
		if branch != "" {
			p.branch = branch
		}
	}
}

// New reads and validates the manifest at path
func New(path string, opts ...Option) (*Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read release manifest", goerr.V("path", path))
	}

	p := &Provider{}
	if err := toml.Unmarshal(raw, &p.doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse release manifest", goerr.V("path", path))
	}

	if p.doc.Version == "" {
		return nil, goerr.New("release manifest has no version", goerr.V("path", path))
	}
	if p.doc.Channel == "" {
		return nil, goerr.New("release manifest has no channel", goerr.V("path", path))
	}

	p.branch = p.doc.Branch
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Resolve returns the release metadata for this run
func (p *Provider) Resolve(ctx context.Context) (*model.ReleaseMeta, error) {
	return &model.ReleaseMeta{
		Version:    p.doc.Version,
		Channel:    model.Channel(p.doc.Channel),
		ReleaseSHA: p.doc.ReleaseSHA,
		CurrentSHA: p.currentSHA,
		Branch:     p.branch,
		Stats: model.BundleStats{
			RendererBundleSize: p.doc.Stats.RendererBundleSize,
			MainBundleSize:     p.doc.Stats.MainBundleSize,
		},
	}, nil
}

// Assets returns the artifact files to publish for the platform. The
// darwin build ships a single archive; the win32 build ships installer,
// standalone and package files, plus a delta package when the manifest
// declares one.
func (p *Provider) Assets(platform model.Platform) ([]model.Asset, error) {
	switch platform {
	case model.PlatformDarwin:
		return assetList(p.doc.Artifacts.Darwin.Archive)

	case model.PlatformWindows:
		win := p.doc.Artifacts.Windows
		paths := []string{win.Installer, win.Standalone, win.Package}
		if win.Delta != "" {
			paths = append(paths, win.Delta)
		}
		return assetList(paths...)

	default:
		return nil, goerr.New("no artifacts defined for platform", goerr.V("platform", platform))
	}
}

func assetList(paths ...string) ([]model.Asset, error) {
	assets := make([]model.Asset, 0, len(paths))
	for _, path := range paths {
		if path == "" {
			return nil, goerr.New("release manifest is missing an artifact path")
		}
		assets = append(assets, model.Asset{
			Name: filepath.Base(path),
			Path: path,
		})
	}
	return assets, nil
}
