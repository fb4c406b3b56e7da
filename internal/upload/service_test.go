package upload

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildMultipartFile constructs a *multipart.FileHeader backed by real content
func buildMultipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write content: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewServiceWith(dir, "http://localhost:8080/uploads", 5)

	t.Run("accepts png and stores file", func(t *testing.T) {
		fh := buildMultipartFile(t, "photo.png", pngBytes(t))

		filename, url, err := svc.SaveImage(fh)
		if err != nil {
			t.Fatalf("SaveImage: %v", err)
		}
		if !strings.HasSuffix(filename, ".png") {
			t.Errorf("expected .png filename, got %q", filename)
		}
		if url != "http://localhost:8080/uploads/"+filename {
			t.Errorf("unexpected url %q", url)
		}
		if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
			t.Errorf("stored file missing: %v", err)
		}
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		fh := buildMultipartFile(t, "notes.txt", []byte("plain text, definitely not an image"))

		if _, _, err := svc.SaveImage(fh); err != ErrUnsupportedType {
			t.Errorf("expected ErrUnsupportedType, got %v", err)
		}
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		small := NewServiceWith(dir, "http://localhost:8080/uploads", 0)
		small.maxSize = 10 // bytes
		fh := buildMultipartFile(t, "big.png", pngBytes(t))

		if _, _, err := small.SaveImage(fh); err != ErrFileTooLarge {
			t.Errorf("expected ErrFileTooLarge, got %v", err)
		}
	})
}

func TestFilenameFromURL(t *testing.T) {
	svc := NewServiceWith(t.TempDir(), "http://localhost:8080/uploads", 5)

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"own url", "http://localhost:8080/uploads/abc.png", "abc.png"},
		{"foreign url", "http://cdn.example.com/abc.png", ""},
		{"path traversal", "http://localhost:8080/uploads/../secret.png", ""},
		{"empty remainder", "http://localhost:8080/uploads/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.FilenameFromURL(tt.url); got != tt.want {
				t.Errorf("FilenameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewServiceWith(dir, "http://localhost:8080/uploads", 5)

	// 删除存在的文件
	target := filepath.Join(dir, "todelete.png")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	svc.DeleteFile("todelete.png")
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("file should be deleted")
	}

	// 删除不存在的文件不应panic或报错
	svc.DeleteFile("missing.png")
	svc.DeleteFiles([]string{"a.png", "b.png"})
}
