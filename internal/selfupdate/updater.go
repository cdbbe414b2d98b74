package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput selects the version to install. An empty TargetVersion means
// whatever the latest release is.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported once before each stage of the update.
type UpdateProgress struct {
	Stage   string
	Message string
}

// Update downloads the release archive for this platform, verifies it against
// the published checksum manifest, and swaps the running binary in place.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag, err := c.resolveTag(ctx, input, progress)
	if err != nil {
		return err
	}

	asset, err := releaseAsset()
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetch(ctx, c.releaseDownloadURL(tag, asset))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	manifest, err := c.fetch(ctx, c.releaseDownloadURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksumManifest(manifest)[asset]
	if !ok {
		return fmt.Errorf("no checksum found for %s in checksums.txt", asset)
	}
	if err := checkSHA256(archive, want); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := unpackBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	sum := sha256.Sum256(binary)
	if err := swapBinary(binary, target, sum[:]); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

func (c *Checker) resolveTag(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) (string, error) {
	if input.TargetVersion != "" {
		return input.TargetVersion, nil
	}

	progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
	result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return result.LatestVersion, nil
}

func (c *Checker) releaseDownloadURL(tag, file string) string {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, file)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// releaseAsset names the archive goreleaser publishes for this platform.
func releaseAsset() (string, error) {
	return releaseAssetFor(runtime.GOOS, runtime.GOARCH)
}

func releaseAssetFor(goos, goarch string) (string, error) {
	if goos == "darwin" {
		// macOS ships a universal binary.
		return "newton-tutor_Darwin_all.tar.gz", nil
	}

	arch := releaseArch(goarch)
	if arch == "" {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	switch goos {
	case "linux":
		return fmt.Sprintf("newton-tutor_Linux_%s.tar.gz", arch), nil
	case "windows":
		return fmt.Sprintf("newton-tutor_Windows_%s.zip", arch), nil
	}
	return "", fmt.Errorf("unsupported operating system: %s", goos)
}

func releaseArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	case "386":
		return "i386"
	}
	return ""
}

// parseChecksumManifest reads the "hash  filename" lines of a checksums.txt.
func parseChecksumManifest(data []byte) map[string]string {
	sums := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		sums[fields[1]] = fields[0]
	}
	return sums
}

func checkSHA256(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

func unpackBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return binaryFromZip(archive, "newton-tutor.exe")
	}
	return binaryFromTarGz(archive, "newton-tutor")
}

func binaryFromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func binaryFromZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// swapBinary writes the new binary next to the target, confirms the bytes on
// disk still match wantSum, then renames it over the target. The rename keeps
// the swap atomic on the same filesystem.
func swapBinary(binary []byte, target string, wantSum []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staging, err := os.MkdirTemp(filepath.Dir(target), ".newton-tutor-update-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	tmp := filepath.Join(staging, "newton-tutor-new")
	if err := os.WriteFile(tmp, binary, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	written, err := os.ReadFile(tmp)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	sum := sha256.Sum256(written)
	if !bytes.Equal(sum[:], wantSum) {
		return fmt.Errorf("%w: temp file was tampered with after write", ErrChecksum)
	}

	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(target, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
