package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFileExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"photo.JPG", "jpg"},
		{"dir/photo.png", "png"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := GetFileExtension(tt.path); got != tt.want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	for _, path := range []string{"a.jpg", "b.jpeg", "c.PNG", "d.webp", "e.gif"} {
		if !IsImageFile(path) {
			t.Errorf("Expected %q to be an image file", path)
		}
	}
	for _, path := range []string{"a.txt", "b.pdf", "c"} {
		if IsImageFile(path) {
			t.Errorf("Expected %q not to be an image file", path)
		}
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	got := GenerateOutputFilename("in/photo.png", "out", "_fitted", "jpg")
	want := filepath.Join("out", "photo_fitted.jpg")
	if got != want {
		t.Errorf("GenerateOutputFilename = %q, want %q", got, want)
	}

	// Empty format falls back to the input extension.
	got = GenerateOutputFilename("photo.webp", "out", "", "")
	want = filepath.Join("out", "photo.webp")
	if got != want {
		t.Errorf("GenerateOutputFilename = %q, want %q", got, want)
	}
}

func TestListImageFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := EnsureDir(sub); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	for _, name := range []string{"a.jpg", "b.txt", "sub/c.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	files, err := ListImageFiles(dir)
	if err != nil {
		t.Fatalf("ListImageFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Errorf("Expected 2 image files, got %d: %v", len(files), files)
	}
}

func TestFileAndDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.jpg")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if !FileExists(file) {
		t.Error("Expected FileExists true for existing file")
	}
	if FileExists(dir) {
		t.Error("Expected FileExists false for a directory")
	}
	if !DirExists(dir) {
		t.Error("Expected DirExists true for existing directory")
	}
	if DirExists(file) {
		t.Error("Expected DirExists false for a file")
	}
}
