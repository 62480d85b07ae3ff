package llm

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestReadAsDataURL(t *testing.T) {
	fs := afero.NewMemMapFs()
	payload := []byte("not really an image")
	for _, name := range []string{"/a.png", "/b.JPG", "/c.jpeg", "/d.bmp", "/e.gif"} {
		if err := afero.WriteFile(fs, name, payload, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	b64 := base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"/a.png", "data:image/png;base64," + b64, false},
		{"/b.JPG", "data:image/jpeg;base64," + b64, false},
		{"/c.jpeg", "data:image/jpeg;base64," + b64, false},
		{"/d.bmp", "data:image/bmp;base64," + b64, false},
		{"/e.gif", "", true},
		{"/missing.png", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ReadAsDataURL(fs, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallError(t *testing.T) {
	reply := CallError(errorString(strings.Repeat("x", 80)))
	if !IsCallError(reply) {
		t.Fatalf("sentinel not detected: %q", reply)
	}
	if want := "call error: " + strings.Repeat("x", 30); reply != want {
		t.Errorf("got %q, want %q", reply, want)
	}
	if IsCallError("img1.png,35,1250") {
		t.Error("normal reply detected as call error")
	}
}

type errorString string

func (e errorString) Error() string { return string(e) }
