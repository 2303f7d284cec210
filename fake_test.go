package efi

// In-memory firmware fake backing the package tests. Failure statuses are
// injected per call site; memory handed out by AllocatePages starts dirty
// (0xAA) so zero-fill behavior is observable.

type fakeFile struct {
	kind    FileKind
	entries map[string]*fakeFile
	data    []byte
	off     int

	openSt Status // returned by the parent's Open for this entry
	kindSt Status
	readSt Status // injected once reads exceeds failAfterReads

	reads          int
	failAfterReads int
	closed         bool
}

func regularFile(data []byte) *fakeFile {
	return &fakeFile{kind: FileRegular, data: data}
}

func directory() *fakeFile {
	return &fakeFile{kind: FileDirectory}
}

func (f *fakeFile) Open(name string, mode uint64) (File, Status) {
	if f.kind != FileDirectory {
		return nil, StatusUnsupported
	}
	entry, ok := f.entries[name]
	if !ok {
		return nil, StatusNotFound
	}
	if entry.openSt.IsError() {
		return nil, entry.openSt
	}
	opened := *entry
	opened.off = 0
	opened.reads = 0
	return &opened, StatusSuccess
}

func (f *fakeFile) Kind() (FileKind, Status) {
	if f.kindSt.IsError() {
		return 0, f.kindSt
	}
	return f.kind, StatusSuccess
}

func (f *fakeFile) Read(p []byte) (int, Status) {
	f.reads++
	if f.readSt.IsError() && f.reads > f.failAfterReads {
		return 0, f.readSt
	}
	n := copy(p, f.data[f.off:])
	f.off += n
	return n, StatusSuccess
}

func (f *fakeFile) Close() Status {
	f.closed = true
	return StatusSuccess
}

type fakeVolume struct {
	root      *fakeFile
	openSt    Status
	consulted bool
}

func volumeWithFiles(entries map[string]*fakeFile) *fakeVolume {
	return &fakeVolume{root: &fakeFile{kind: FileDirectory, entries: entries}}
}

func (v *fakeVolume) OpenVolume() (File, Status) {
	v.consulted = true
	if v.openSt.IsError() {
		return nil, v.openSt
	}
	return v.root, StatusSuccess
}

type fakeBootServices struct {
	volumes []*fakeVolume // nil element: HandleProtocol yields a null instance

	countSt  Status
	locateSt Status
	protoSt  Status

	nextAddr  PhysAddr
	allocSt   Status
	mem       map[PhysAddr][]byte
	allocated map[PhysAddr]bool
}

func newFakeBootServices(volumes ...*fakeVolume) *fakeBootServices {
	return &fakeBootServices{
		volumes:   volumes,
		nextAddr:  0x100000,
		mem:       make(map[PhysAddr][]byte),
		allocated: make(map[PhysAddr]bool),
	}
}

func (bt *fakeBootServices) AllocatePages(alloc AllocateType, memType MemoryType, pages int) (PhysAddr, Status) {
	if bt.allocSt.IsError() {
		return 0, bt.allocSt
	}
	addr := bt.nextAddr
	bt.nextAddr += PhysAddr(pages * FrameSize)

	page := make([]byte, pages*FrameSize)
	for i := range page {
		page[i] = 0xAA
	}
	bt.mem[addr] = page
	bt.allocated[addr] = true
	return addr, StatusSuccess
}

func (bt *fakeBootServices) FreePages(addr PhysAddr, pages int) Status {
	if !bt.allocated[addr] {
		return StatusNotFound
	}
	delete(bt.allocated, addr)
	return StatusSuccess
}

func (bt *fakeBootServices) CountHandles(proto GUID) (int, Status) {
	if bt.countSt.IsError() {
		return 0, bt.countSt
	}
	return len(bt.volumes), StatusSuccess
}

func (bt *fakeBootServices) LocateHandles(proto GUID, handles []Handle) Status {
	if bt.locateSt.IsError() {
		return bt.locateSt
	}
	for i := range bt.volumes {
		handles[i] = Handle(i + 1)
	}
	return StatusSuccess
}

func (bt *fakeBootServices) HandleProtocol(h Handle) (Volume, Status) {
	if bt.protoSt.IsError() {
		return nil, bt.protoSt
	}
	v := bt.volumes[int(h)-1]
	if v == nil {
		return nil, StatusSuccess
	}
	return v, StatusSuccess
}

func (bt *fakeBootServices) Memory(addr PhysAddr, size int) ([]byte, Status) {
	page, ok := bt.mem[addr]
	if !ok || size > len(page) {
		return nil, StatusInvalidParameter
	}
	return page[:size], StatusSuccess
}

var _ BootServices = (*fakeBootServices)(nil)
