package model

import (
	"fmt"
	"strings"
)

// Asset is a file produced by the packager that should be published
type Asset struct {
	Name string // display name, may contain spaces
	Path string // location on the local filesystem
}

// Artifact describes one uploaded release file. Immutable after the
// upload completes.
type Artifact struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	SHA  string `json:"sha"`
}

// DeployPayload is the body POSTed to the deploy endpoint. Field names
// are part of the wire contract and must not change.
type DeployPayload struct {
	Context    string      `json:"context"`
	BranchName string      `json:"branch_name"`
	Artifacts  []Artifact  `json:"artifacts"`
	Stats      DeployStats `json:"stats"`
}

// DeployStats reports bundle sizes to the deploy endpoint
type DeployStats struct {
	Platform           string `json:"platform"`
	RendererBundleSize int64  `json:"rendererBundleSize"`
	MainBundleSize     int64  `json:"mainBundleSize"`
}

// PublishResult is the outcome of a publish run. A skipped result is
// not an error: the commit was simply not an authorized release point.
type PublishResult struct {
	Skipped   bool
	Reason    string
	Artifacts []Artifact
}

// ObjectKey builds the deterministic object storage key for an asset.
// The commit hash is truncated to 8 characters and spaces are removed
// from the asset name so the key is URL-safe without escaping.
func ObjectKey(version, sha, assetName string) string {
	if len(sha) > 8 {
		sha = sha[:8]
	}
	name := strings.ReplaceAll(assetName, " ", "")
	return fmt.Sprintf("releases/%s-%s/%s", version, sha, name)
}
