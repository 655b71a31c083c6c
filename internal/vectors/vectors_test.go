package vectors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReferenceVectors(t *testing.T) {
	vecs, err := Load(filepath.Join("testdata", "vectors.yaml"))
	if err != nil {
		t.Fatalf("load reference vectors: %v", err)
	}
	if len(vecs) == 0 {
		t.Fatal("reference vector file is empty")
	}

	for _, v := range vecs {
		t.Run(v.Name, func(t *testing.T) {
			if err := v.Check(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid text vector",
			content: `vectors:
  - name: abc
    text: abc
    sum32: 0x1c94221b
`,
		},
		{
			name: "valid hex vector with length",
			content: `vectors:
  - name: partial
    hex: '00010203'
    length: 2
    sum64: 0x1
`,
		},
		{
			name: "no input form",
			content: `vectors:
  - name: nothing
    sum32: 0x1
`,
			wantErr: true,
		},
		{
			name: "both input forms",
			content: `vectors:
  - name: both
    text: abc
    hex: '616263'
    sum32: 0x1
`,
			wantErr: true,
		},
		{
			name: "missing name",
			content: `vectors:
  - text: abc
    sum32: 0x1
`,
			wantErr: true,
		},
		{
			name: "no expected sums",
			content: `vectors:
  - name: abc
    text: abc
`,
			wantErr: true,
		},
		{
			name: "length past the input",
			content: `vectors:
  - name: long
    hex: '0001'
    length: 3
    sum32: 0x1
`,
			wantErr: true,
		},
		{
			name: "bad hex",
			content: `vectors:
  - name: odd
    hex: '0'
    sum32: 0x1
`,
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			content: `vectors: [invalid`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "vectors.yaml")
			if err := os.WriteFile(tmpFile, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write temp file: %v", err)
			}

			_, err := Load(tmpFile)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/vectors.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestCheckMismatch(t *testing.T) {
	wrong := uint32(0xdeadbeef)
	text := "abc"
	v := Vector{Name: "wrong", Text: &text, Sum32: &wrong}
	if err := v.Check(); err == nil {
		t.Error("expected mismatch error, got nil")
	}
}
