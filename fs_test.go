package robofolio

import (
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"golang.org/x/tools/godoc/vfs/httpfs"
	"golang.org/x/tools/godoc/vfs/mapfs"
)

func TestWalkFileSystem(t *testing.T) {
	wantAllPaths := []string{
		"a/b.html",
		"a/c/d.html",
		"e.html",
		"f/g.html",
		"f/h.html",
	}
	files := make(map[string]string, len(wantAllPaths))
	for _, path := range wantAllPaths {
		files[path] = ""
	}
	files["x/y.png"] = ""     // add file that does not pass the isHTMLPage filter
	files[".git/z.html"] = "" // dot-dirs are skipped
	fs := httpfs.New(mapfs.New(files))

	var allPaths []string
	collect := func(path string) error {
		allPaths = append(allPaths, path)
		return nil
	}
	if err := WalkFileSystem(fs, isHTMLPage, collect); err != nil {
		t.Fatal(err)
	}
	sort.Strings(allPaths)
	if !reflect.DeepEqual(allPaths, wantAllPaths) {
		t.Errorf("got paths %v, want %v", allPaths, wantAllPaths)
	}
}

func TestWalkFileSystem_dirRoot(t *testing.T) {
	writeFiles := func(t *testing.T, dir string) {
		for _, name := range []string{"index.html", "posts/a/index.html", ".git/x.html", "img/a.gif"} {
			path := filepath.Join(dir, filepath.FromSlash(name))
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, nil, 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
	walk := func(t *testing.T, fs http.FileSystem) []string {
		var paths []string
		err := WalkFileSystem(fs, isHTMLPage, func(path string) error {
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		sort.Strings(paths)
		return paths
	}
	want := []string{"index.html", "posts/a/index.html"}

	t.Run("current dir", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir)
		oldWD, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(oldWD) })
		if got := walk(t, http.Dir(".")); !reflect.DeepEqual(got, want) {
			t.Errorf("got paths %v, want %v", got, want)
		}
	})

	t.Run("dot-dir root", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), ".site")
		writeFiles(t, dir)
		if got := walk(t, http.Dir(dir)); !reflect.DeepEqual(got, want) {
			t.Errorf("got paths %v, want %v", got, want)
		}
	})
}

func TestReadFile(t *testing.T) {
	fs := httpfs.New(mapfs.New(map[string]string{"a/b.txt": "c"}))
	data, err := ReadFile(fs, "/a/b.txt")
	if err != nil {
		t.Fatal(err)
	}
	if want := "c"; string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
	if _, err := ReadFile(fs, "/a/missing.txt"); !os.IsNotExist(err) {
		t.Errorf("got error %v, want not exist", err)
	}
}
