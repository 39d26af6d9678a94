package dialog

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// UserDirsProvider supplies the well-known user directories for the
// places panel. The dialog refreshes them wholesale on open/refresh and
// otherwise treats them as read-only display data.
type UserDirsProvider interface {
	UserDirs() UserDirs
}

// MountProvider supplies the mounted filesystems for the places panel.
type MountProvider interface {
	Mounts() []Mount
}

// NewUserDirsProvider returns the default provider, which derives the
// standard directories from the user's home and keeps only the ones
// that exist.
func NewUserDirsProvider() UserDirsProvider {
	return &homeUserDirs{}
}

type homeUserDirs struct{}

func (p *homeUserDirs) UserDirs() UserDirs {
	home, err := os.UserHomeDir()
	if err != nil {
		logrus.Debugf("No home directory available: %v", err)
		return UserDirs{}
	}

	dirs := UserDirs{Home: home}
	dirs.Desktop = existingDir(filepath.Join(home, "Desktop"))
	dirs.Documents = existingDir(filepath.Join(home, "Documents"))
	dirs.Downloads = existingDir(filepath.Join(home, "Downloads"))
	dirs.Pictures = existingDir(filepath.Join(home, "Pictures"))
	dirs.Videos = existingDir(filepath.Join(home, "Videos"))
	return dirs
}

func existingDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return ""
}

// NewMountProvider returns the default provider. On Linux it reads the
// mount table; elsewhere, or when the table is unavailable, it falls
// back to the filesystem root.
func NewMountProvider() MountProvider {
	return &mountTable{path: "/proc/self/mounts"}
}

type mountTable struct {
	path string
}

func (p *mountTable) Mounts() []Mount {
	file, err := os.Open(p.path)
	if err != nil {
		logrus.Debugf("Mount table unavailable: %v", err)
		return []Mount{{Name: "/", Path: "/"}}
	}
	defer file.Close()

	var mounts []Mount
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}
		mounts = append(mounts, Mount{
			Name: fields[0],
			Path: unescapeMountPath(fields[1]),
		})
	}

	if len(mounts) == 0 {
		mounts = []Mount{{Name: "/", Path: "/"}}
	}
	return mounts
}

// unescapeMountPath decodes the octal escapes the kernel uses for
// whitespace in mount points.
func unescapeMountPath(path string) string {
	replacer := strings.NewReplacer(`\040`, " ", `\011`, "\t", `\012`, "\n", `\134`, `\`)
	return replacer.Replace(path)
}
