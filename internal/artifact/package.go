package artifact

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sharebot0/sharebot/internal/lang"
)

// stampLayout produces timestamps like 20240131_154502 for delivered
// filenames. Wire format: changing it changes the delivered names.
const stampLayout = "20060102_150405"

// File is an in-memory single-file delivery: a named byte buffer handed to
// the chat gateway as an attachment.
type File struct {
	Name string
	Data []byte
}

// SingleFile wraps a generated artifact as a code_<stamp>.<ext> buffer.
func SingleFile(a *Artifact, at time.Time) File {
	return namedFile("code_", a, at)
}

// ImprovedFile wraps an improve-workflow result as improved_<stamp>.<ext>.
func ImprovedFile(a *Artifact, at time.Time) File {
	return namedFile("improved_", a, at)
}

func namedFile(prefix string, a *Artifact, at time.Time) File {
	return File{
		Name: prefix + at.Format(stampLayout) + "." + a.Language.Extension(),
		Data: []byte(a.Code),
	}
}

// Packager turns a generated artifact into a zipped project bundle.
//
// A bundle always contains exactly the main source file (named by
// lang.MainFilename) and a generated README.md referencing it. Bundles are
// written to Dir (os.TempDir by default); the staging directory used to lay
// out the files is removed once the archive is finalized. The archive itself
// is left for the delivery layer, which owns its lifetime.
type Packager struct {
	dir    string
	logger *slog.Logger
}

// NewPackager creates a Packager writing archives into dir.
// Empty dir means the system temp directory; nil logger means slog.Default.
func NewPackager(dir string, logger *slog.Logger) *Packager {
	if dir == "" {
		dir = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Packager{dir: dir, logger: logger}
}

// BundleProject writes a's code plus a generated README into a fresh staging
// directory, archives both into project_<stamp>.zip under the packager's
// directory, and returns the archive path.
//
// Any directory, file, or archive I/O failure is fatal for the current
// request: the error is returned for the caller to surface as a generic
// failure reply, and the request is not retried.
func (p *Packager) BundleProject(a *Artifact, at time.Time) (string, error) {
	staging, err := os.MkdirTemp(p.dir, "proj_")
	if err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(staging); rmErr != nil {
			p.logger.Warn("removing staging directory", "dir", staging, "error", rmErr)
		}
	}()

	mainFile := lang.MainFilename(a.Language)
	files := []File{
		{Name: mainFile, Data: []byte(a.Code)},
		{Name: "README.md", Data: []byte(readme(a.Language, mainFile))},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(staging, f.Name), f.Data, 0o600); err != nil {
			return "", fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}

	zipPath := filepath.Join(p.dir, "project_"+at.Format(stampLayout)+".zip")
	if err := archiveFiles(zipPath, staging, files); err != nil {
		// Don't leave a truncated archive behind.
		_ = os.Remove(zipPath)
		return "", err
	}

	p.logger.Debug("bundled project",
		"language", a.Language,
		"main_file", mainFile,
		"archive", zipPath)
	return zipPath, nil
}

// readme generates the bundle's README body: the project language and the
// name of the main source file.
func readme(language lang.Tag, mainFile string) string {
	return fmt.Sprintf("## مشروع %s\n\nالملف الرئيسي: %s", language, mainFile)
}

// archiveFiles zips the staged files into zipPath.
func archiveFiles(zipPath, staging string, files []File) (err error) {
	out, err := os.Create(zipPath) // #nosec G304 -- path built from packager dir and timestamp
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", zipPath, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing archive: %w", closeErr)
		}
	}()

	zw := zip.NewWriter(out)
	for _, f := range files {
		w, createErr := zw.Create(f.Name)
		if createErr != nil {
			return fmt.Errorf("adding %s to archive: %w", f.Name, createErr)
		}
		data, readErr := os.ReadFile(filepath.Join(staging, f.Name)) // #nosec G304 -- staged by BundleProject
		if readErr != nil {
			return fmt.Errorf("reading staged %s: %w", f.Name, readErr)
		}
		if _, writeErr := w.Write(data); writeErr != nil {
			return fmt.Errorf("writing %s to archive: %w", f.Name, writeErr)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}
