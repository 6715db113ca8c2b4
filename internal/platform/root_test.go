package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfig(t *testing.T) {
	// Create a temp directory structure
	// /tmp/
	//   project/ (.smartnotes.yaml)
	//     subdir/
	//       nested/
	//   empty/
	//     .smartnotes.yaml/ (directory, ignored)

	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	subDir := filepath.Join(projectDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(emptyDir, ConfigFileName), 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(projectDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("log:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{
			name:      "Start at Root",
			startPath: projectDir,
			want:      configPath,
		},
		{
			name:      "Start in Subdir",
			startPath: subDir,
			want:      configPath,
		},
		{
			name:      "Start Nested Deeply",
			startPath: nestedDir,
			want:      configPath,
		},
		{
			name:      "Directory Named Like Config",
			startPath: emptyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindConfig(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrConfigNotFound) {
					t.Errorf("expected ErrConfigNotFound, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("FindConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}
