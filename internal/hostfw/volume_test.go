package hostfw

import (
	"os"
	"path/filepath"
	"testing"

	efi "github.com/nolandda/mythril-efi"
)

// newTestVolume builds a volume over a temp directory populated with
// EFI-style contents.
func newTestVolume(t *testing.T, files map[string][]byte) *DirVolume {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, data, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	vol, err := NewDirVolume(dir)
	if err != nil {
		t.Fatalf("NewDirVolume failed: %v", err)
	}
	return vol
}

func TestNewDirVolumeRejectsNonDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := NewDirVolume(file); err == nil {
		t.Error("NewDirVolume should reject a non-directory path")
	}
	if _, err := NewDirVolume(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("NewDirVolume should reject a missing path")
	}
}

func TestDirVolumeOpen(t *testing.T) {
	vol := newTestVolume(t, map[string][]byte{
		"EFI/mythril/kernel.bin": []byte("kernel contents"),
	})

	root, st := vol.OpenVolume()
	if st.IsError() {
		t.Fatalf("OpenVolume failed: %s", st)
	}
	defer root.Close()

	t.Run("backslash path resolves", func(t *testing.T) {
		f, st := root.Open(`\EFI\mythril\kernel.bin`, efi.OpenModeRead)
		if st.IsError() {
			t.Fatalf("Open failed: %s", st)
		}
		defer f.Close()

		kind, st := f.Kind()
		if st.IsError() || kind != efi.FileRegular {
			t.Errorf("Kind = %v/%v, want regular file", kind, st)
		}

		buf := make([]byte, 64)
		n, st := f.Read(buf)
		if st.IsError() {
			t.Fatalf("Read failed: %s", st)
		}
		if string(buf[:n]) != "kernel contents" {
			t.Errorf("Read = %q, want %q", buf[:n], "kernel contents")
		}
		if n, st := f.Read(buf); n != 0 || st.IsError() {
			t.Errorf("Read at EOF = (%d, %v), want (0, success)", n, st)
		}
	})

	t.Run("directory resolves as directory", func(t *testing.T) {
		f, st := root.Open(`\EFI\mythril`, efi.OpenModeRead)
		if st.IsError() {
			t.Fatalf("Open failed: %s", st)
		}
		defer f.Close()

		kind, st := f.Kind()
		if st.IsError() || kind != efi.FileDirectory {
			t.Errorf("Kind = %v/%v, want directory", kind, st)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, st := root.Open(`\EFI\mythril\initrd.img`, efi.OpenModeRead); st != efi.StatusNotFound {
			t.Errorf("Open status = %v, want StatusNotFound", st)
		}
	})

	t.Run("write mode rejected", func(t *testing.T) {
		if _, st := root.Open(`\EFI\mythril\kernel.bin`, efi.OpenModeWrite); st != efi.StatusWriteProtected {
			t.Errorf("Open status = %v, want StatusWriteProtected", st)
		}
	})

	t.Run("escape rejected", func(t *testing.T) {
		if _, st := root.Open(`\..\..\etc\passwd`, efi.OpenModeRead); st != efi.StatusAccessDenied {
			t.Errorf("Open status = %v, want StatusAccessDenied", st)
		}
	})

	t.Run("relative open from subdirectory", func(t *testing.T) {
		sub, st := root.Open(`\EFI`, efi.OpenModeRead)
		if st.IsError() {
			t.Fatalf("Open failed: %s", st)
		}
		defer sub.Close()

		f, st := sub.Open(`mythril\kernel.bin`, efi.OpenModeRead)
		if st.IsError() {
			t.Fatalf("relative Open failed: %s", st)
		}
		f.Close()
	})
}
