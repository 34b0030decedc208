package output

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// maxArchiveEntry caps how much of a single entry ListArchive will read.
const maxArchiveEntry = 256 * 1024 * 1024

// Archive writes the files at paths into a tar.xz at dest. Entries are
// stored by base name; a later file with a duplicate base name is rejected.
func Archive(dest string, paths []string) (err error) {
	if len(paths) == 0 {
		return fmt.Errorf("no files to archive")
	}
	if dir := filepath.Dir(dest); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - output directory is user facing
			return &WriteError{Path: dir, Err: err}
		}
	}

	out, err := os.Create(dest) // #nosec G304 - archive path chosen by the user
	if err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = &WriteError{Path: dest, Err: closeErr}
		}
		if err != nil {
			_ = os.Remove(dest)
		}
	}()

	xzw, err := xz.NewWriter(out)
	if err != nil {
		return &WriteError{Path: dest, Err: fmt.Errorf("failed to create xz writer: %w", err)}
	}
	tw := tar.NewWriter(xzw)

	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		if seen[name] {
			return fmt.Errorf("duplicate archive entry: %s", name)
		}
		seen[name] = true
		if err := addFile(tw, p, name); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return &WriteError{Path: dest, Err: fmt.Errorf("failed to finish tar stream: %w", err)}
	}
	if err := xzw.Close(); err != nil {
		return &WriteError{Path: dest, Err: fmt.Errorf("failed to finish xz stream: %w", err)}
	}
	return nil
}

func addFile(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path) // #nosec G304 - archiving files this program wrote
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("failed to build tar header for %s: %w", path, err)
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write tar header for %s: %w", name, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("failed to archive %s: %w", name, err)
	}
	return nil
}

// ArchiveEntry is one file inside an archive.
type ArchiveEntry struct {
	Name string
	Size int64
}

// ListArchive reads the entries of a tar.xz written by Archive. Entry names
// that are absolute or contain ".." are rejected.
func ListArchive(path string) ([]ArchiveEntry, error) {
	f, err := os.Open(path) // #nosec G304 - user-specified archive, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	xzr, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	tr := tar.NewReader(xzr)

	var entries []ArchiveEntry
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if strings.Contains(hdr.Name, "..") || filepath.IsAbs(hdr.Name) {
			return nil, fmt.Errorf("unsafe archive entry: %s", hdr.Name)
		}

		n, err := io.Copy(io.Discard, newLimitedReader(tr, maxArchiveEntry))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", hdr.Name, err)
		}
		entries = append(entries, ArchiveEntry{Name: hdr.Name, Size: n})
	}
}

// limitedReader fails once more than its budget has been read, rather
// than silently truncating like io.LimitReader.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func newLimitedReader(r io.Reader, maxBytes int64) *limitedReader {
	return &limitedReader{r: r, remaining: maxBytes}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
