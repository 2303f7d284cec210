package efi

import "log/slog"

// readChunkSize is the fixed per-call read granularity for file streaming.
const readChunkSize = 1024

// ReadFile locates path across every firmware filesystem volume and
// returns its full contents.
//
// Volumes are tried in firmware enumeration order and the first volume on
// which the path opens wins. An open failure on one volume (including
// "not found") moves the search to the next volume; only total exhaustion
// is reported, as a *NotFoundError. A path that opens but resolves to a
// directory aborts the whole search with a *DirectoryError: the path
// matched something, just not a loadable file, and that ambiguity is
// treated as caller error rather than a reason to keep looking.
func ReadFile(bt BootServices, path string) ([]byte, error) {
	count, st := bt.CountHandles(GUIDSimpleFileSystem)
	if st.IsError() {
		recordFirmwareError()
		return nil, &FirmwareError{Op: "LocateHandle (sizing)", Status: st}
	}

	// Two-phase size/fill: elements stay NullHandle until the firmware
	// populates them.
	volumes := make([]Handle, count)
	if st := bt.LocateHandles(GUIDSimpleFileSystem, volumes); st.IsError() {
		recordFirmwareError()
		return nil, &FirmwareError{Op: "LocateHandle", Status: st}
	}

	for _, volume := range volumes {
		fs, st := bt.HandleProtocol(volume)
		if st.IsError() {
			recordFirmwareError()
			return nil, &FirmwareError{Op: "HandleProtocol", Status: st}
		}
		if fs == nil {
			return nil, &NullProtocolError{Handle: volume}
		}

		root, st := fs.OpenVolume()
		if st.IsError() {
			recordFirmwareError()
			return nil, &FirmwareError{Op: "OpenVolume", Status: st}
		}

		handle, st := root.Open(path, OpenModeRead)
		if st.IsError() {
			// Not on this volume (or not openable here); keep searching.
			root.Close()
			continue
		}

		contents, err := readRegularFile(handle, path)
		handle.Close()
		root.Close()
		if err != nil {
			return nil, err
		}

		recordFileRead(len(contents))
		return contents, nil
	}

	return nil, &NotFoundError{Path: path}
}

// readRegularFile resolves the handle's concrete type and streams a
// regular file to completion. A mid-stream read failure is fatal for the
// whole operation; no partial result is returned.
func readRegularFile(f File, path string) ([]byte, error) {
	kind, st := f.Kind()
	if st.IsError() {
		recordFirmwareError()
		return nil, &FirmwareError{Op: "Kind", Status: st}
	}
	if kind == FileDirectory {
		return nil, &DirectoryError{Path: path}
	}

	slog.Info("reading file", "path", path)

	var contents []byte
	buf := make([]byte, readChunkSize)
	for {
		n, st := f.Read(buf)
		if st.IsError() {
			recordFirmwareError()
			return nil, &FirmwareError{Op: "Read", Status: st}
		}
		if st.IsWarning() {
			slog.Warn("Read succeeded with warning", "path", path, "status", st.String())
		}
		if n == 0 {
			break
		}
		// Only the bytes actually read are kept, so a short final read
		// never pads the result with chunk-tail garbage.
		contents = append(contents, buf[:n]...)
	}

	return contents, nil
}
