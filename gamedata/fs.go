package gamedata

import (
	"io/fs"
	"os"
	"path"
	"slices"
)

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. This way the code that reads data
// can use a FS object and work the same if the files are embedded or not.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

// Open returns the current folder if it has a data folder, so that data can
// be edited while the game runs. Otherwise it returns embedded.
func Open(embedded FS) (fsys FS, onDisk bool) {
	disk := os.DirFS(".").(FS)
	if FileExists(disk, "data") {
		return disk, true
	}
	return embedded, false
}

func FileExists(fsys fs.FS, name string) bool {
	_, err := fs.Stat(fsys, name)
	return err == nil
}

// GetFiles returns the files in dir whose names match pattern, sorted.
func GetFiles(fsys FS, dir string, pattern string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		matched, err := path.Match(pattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if matched && !entry.IsDir() {
			files = append(files, path.Join(dir, entry.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}
