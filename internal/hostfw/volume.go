package hostfw

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	efi "github.com/nolandda/mythril-efi"
)

// DirVolume exposes a host directory as a firmware filesystem volume.
// Paths use the firmware backslash convention and are resolved read-only
// inside the directory; escapes via ".." are rejected.
type DirVolume struct {
	root string
}

// NewDirVolume wraps a host directory as a volume.
func NewDirVolume(hostPath string) (*DirVolume, error) {
	info, err := os.Stat(hostPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("hostfw: volume path is not a directory")
	}

	absPath, err := filepath.Abs(hostPath)
	if err != nil {
		return nil, err
	}
	return &DirVolume{root: absPath}, nil
}

// OpenVolume implements efi.Volume.
func (v *DirVolume) OpenVolume() (efi.File, efi.Status) {
	return &hostFile{vol: v, isDir: true}, efi.StatusSuccess
}

var _ efi.Volume = (*DirVolume)(nil)

// hostFile implements efi.File over a host path. Directories carry no
// open os.File; regular files hold one until Close.
type hostFile struct {
	vol   *DirVolume
	rel   string // slash-separated, "" for the volume root
	isDir bool
	f     *os.File
}

// Open implements efi.File.
func (h *hostFile) Open(name string, mode uint64) (efi.File, efi.Status) {
	if !h.isDir {
		return nil, efi.StatusUnsupported
	}
	if mode&(efi.OpenModeWrite|efi.OpenModeCreate) != 0 {
		return nil, efi.StatusWriteProtected
	}

	rel, ok := h.resolve(name)
	if !ok {
		return nil, efi.StatusAccessDenied
	}

	full := filepath.Join(h.vol.root, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, efi.StatusNotFound
		}
		return nil, efi.StatusDeviceError
	}

	if info.IsDir() {
		return &hostFile{vol: h.vol, rel: rel, isDir: true}, efi.StatusSuccess
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, efi.StatusAccessDenied
		}
		return nil, efi.StatusDeviceError
	}
	return &hostFile{vol: h.vol, rel: rel, f: f}, efi.StatusSuccess
}

// resolve converts a firmware path into a slash path relative to the
// receiver, rejecting anything that escapes the volume root.
func (h *hostFile) resolve(name string) (string, bool) {
	p := strings.ReplaceAll(name, `\`, "/")
	p = strings.TrimPrefix(p, "/")
	if h.rel != "" {
		p = h.rel + "/" + p
	}
	p = path.Clean(p)
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", false
	}
	if p == "." {
		p = ""
	}
	return p, true
}

// Kind implements efi.File.
func (h *hostFile) Kind() (efi.FileKind, efi.Status) {
	if h.isDir {
		return efi.FileDirectory, efi.StatusSuccess
	}
	return efi.FileRegular, efi.StatusSuccess
}

// Read implements efi.File.
func (h *hostFile) Read(p []byte) (int, efi.Status) {
	if h.isDir || h.f == nil {
		return 0, efi.StatusUnsupported
	}
	n, err := h.f.Read(p)
	if err != nil && err != io.EOF {
		return 0, efi.StatusDeviceError
	}
	return n, efi.StatusSuccess
}

// Close implements efi.File.
func (h *hostFile) Close() efi.Status {
	if h.f != nil {
		h.f.Close()
		h.f = nil
	}
	return efi.StatusSuccess
}

var _ efi.File = (*hostFile)(nil)
