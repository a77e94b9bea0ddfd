package main

import (
	"image"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/counters/gamedata"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func LoadImage(fsys gamedata.FS, str string) *ebiten.Image {
	file, err := fsys.Open(str)
	Check(err)
	if err != nil {
		return nil
	}
	defer func(file fs.File) { Check(file.Close()) }(file)

	img, _, err := image.Decode(file)
	Check(err)
	if err != nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

// FolderWatcher tells when the files of a folder change, so that data can be
// edited while the game runs.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	var times []time.Time
	err := fs.WalkDir(os.DirFS(f.Folder), ".",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			times = append(times, info.ModTime())
			return nil
		})
	Check(err)

	changed := len(times) != len(f.times)
	for i := range times {
		if !changed && !times[i].Equal(f.times[i]) {
			changed = true
		}
	}
	f.times = times
	return changed
}
