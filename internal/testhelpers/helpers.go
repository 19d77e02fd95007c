package testhelpers

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
)

var testPrefix = "htest"

func TempDir(t *testing.T) (string, func()) {
	tdir, err := ioutil.TempDir("", testPrefix)
	if err != nil {
		t.Fatal(err)
	}
	return tdir, func() {
		err = os.RemoveAll(tdir)
		if err != nil {
			t.Fatal(err)
		}
	}
}

// WriteScript creates an executable shell script for use as a stand-in
// retrieval command and returns its path.
func WriteScript(t *testing.T, dir, name, content string) string {
	file := path.Join(dir, name)
	err := ioutil.WriteFile(file, []byte(content), 0755)
	if err != nil {
		t.Fatal(err)
	}
	return file
}

// WriteOutput creates an empty harvested file at root/relPath,
// including any intermediate directories.
func WriteOutput(t *testing.T, root, relPath string) string {
	file := path.Join(root, relPath)
	err := os.MkdirAll(path.Dir(file), 0755)
	if err != nil {
		t.Fatal(err)
	}
	err = ioutil.WriteFile(file, []byte("netcdf"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return file
}
