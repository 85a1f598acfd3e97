/*
	Package ucdfiles locates and caches Unicode Character Database files.

Package ucdfiles downloads the UCD.zip archive matching the Unicode version
the embedded tables are built from, unpacks it into a local cache directory
and hands out readers for individual database files. The table generator is
its only client; library code never touches the network.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucdfiles

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// ZipURL is the download location of the UCD archive. The version segment
// must match the Version constant of the root package.
const ZipURL = "https://www.unicode.org/Public/15.0.0/ucd/UCD.zip"

// Path returns the location of a UCD file below the cache directory.
func Path(dir, file string) string {
	return filepath.Join(dir, filepath.FromSlash(file))
}

// Open returns a reader for the given UCD file, downloading and unpacking
// the archive first if the cache directory is not yet populated.
func Open(dir, file string) (io.ReadCloser, error) {
	p := Path(dir, file)
	if _, err := os.Stat(p); err != nil {
		if err = Ensure(dir); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", file, err)
	}
	return f, nil
}

// Ensure populates the cache directory from ZipURL. Files already present
// are overwritten.
func Ensure(dir string) error {
	resp, err := http.Get(ZipURL)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET failed: %v", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}

	z, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to extract: %w", err)
	}

	for _, file := range z.File {
		if file.FileInfo().IsDir() {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to open %v: %w", file.Name, err)
		}
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(file.Name)), rc); err != nil {
			return fmt.Errorf("failed to write %v: %w", file.Name, err)
		}
	}
	return nil
}

func writeFile(path string, rc io.ReadCloser) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	defer func() { _ = rc.Close() }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	_, err = io.Copy(f, rc)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
