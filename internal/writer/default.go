package writer

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"git.lost.host/meutraa/svt/internal/merge"
	"github.com/pkg/errors"
)

// DefaultBackup is the backup filename, relative to the working directory.
const DefaultBackup = "backup.osu"

var (
	ErrBackup = errors.New("error backing up file")
	ErrWrite  = errors.New("error writing output")
)

type DefaultWriter struct {
	BackupPath string
}

func (w *DefaultWriter) backupPath() string {
	if w.BackupPath == "" {
		return DefaultBackup
	}
	return w.BackupPath
}

// PreviewPath names the preview difficulty next to the map,
// "Artist - Title (Mapper) [Hard].osu" becomes "Artist - Title (Mapper) [preview].osu".
func PreviewPath(in string) string {
	name := strings.SplitN(filepath.Base(in), "[", 2)[0]
	return filepath.Join(filepath.Dir(in), name+"[preview].osu")
}

// sameFile reports whether a and b name one file. A b that does not exist
// yet is compared by absolute path.
func sameFile(a, b string) bool {
	sa, err := os.Stat(a)
	if nil != err {
		return false
	}
	if sb, err := os.Stat(b); nil == err {
		return os.SameFile(sa, sb)
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return nil == errA && nil == errB && absA == absB
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if nil != err {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if nil != err {
		return err
	}
	if _, err := io.Copy(out, in); nil != err {
		out.Close()
		return err
	}
	return out.Close()
}

// render copies in, swapping the [TimingPoints] body for points.
func render(in string, points []*beatmap.Object, preview bool) (string, error) {
	f, err := os.Open(in)
	if nil != err {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	section := beatmap.SectionOther
	found := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		var header bool
		if section, header = section.Next(line); header {
			sb.WriteString(line)
			sb.WriteByte('\n')
			if section == beatmap.SectionTimingPoints {
				found = true
				for _, p := range points {
					line := p.Line
					if line == "" {
						line = beatmap.FormatTimingPoint(p)
					}
					sb.WriteString(line)
					sb.WriteByte('\n')
				}
				sb.WriteByte('\n')
			}
			continue
		}

		if section == beatmap.SectionTimingPoints {
			continue
		}
		if preview && strings.HasPrefix(line, "Version:") {
			line = "Version:preview"
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); nil != err {
		return "", err
	}
	if !found {
		return "", errors.New("no [TimingPoints] section")
	}
	return sb.String(), nil
}

// replace writes through a temporary file in the destination directory so
// out is never left half written.
func replace(out, contents string, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(out), ".svt-*.tmp")
	if nil != err {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(contents); nil != err {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); nil != err {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); nil != err {
		return err
	}
	if err := os.Chmod(tmp.Name(), mode); nil != err {
		return err
	}
	return os.Rename(tmp.Name(), out)
}

// Write never touches out unless the backup copy succeeded.
func (w *DefaultWriter) Write(in, out string, result *merge.Result, preview bool) (int, error) {
	if sameFile(in, w.backupPath()) {
		return 0, errors.Wrapf(ErrBackup, "%s is the backup file", in)
	}
	info, err := os.Stat(in)
	if nil != err {
		return 0, errors.Wrapf(ErrBackup, "%v", err)
	}
	if err := copyFile(in, w.backupPath()); nil != err {
		return 0, errors.Wrapf(ErrBackup, "%v", err)
	}

	contents, err := render(in, result.Points, preview)
	if nil != err {
		return 0, errors.Wrapf(ErrWrite, "%s: %v", in, err)
	}
	if err := replace(out, contents, info.Mode().Perm()); nil != err {
		return 0, errors.Wrapf(ErrWrite, "%s: %v", out, err)
	}

	beatmap.Debug.Printf("[write] %d points (%d new) to %s", len(result.Points), result.Accepted, out)
	return result.Accepted, nil
}
