package cfbio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/pkg/errors"

	"github.com/hailam/altiumlib/internal/altiumerr"
)

// This file hand-rolls the write half of the CFB/OLE container: no
// library in this module's dependency closure can create one (mscfb only
// reads), so LibraryAssembly's write path serialises the sector/FAT/
// directory structure itself, following the Microsoft Compound File
// Binary layout directly.
const (
	sectorSize = 512
	dirEntrySize = 128

	freeSect     uint32 = 0xFFFFFFFF
	endOfChain   uint32 = 0xFFFFFFFE
	fatSectMark  uint32 = 0xFFFFFFFD
	noStream     uint32 = 0xFFFFFFFF

	objUnknown byte = 0
	objStorage byte = 1
	objStream  byte = 2
	objRoot    byte = 5
)

// Stream is one leaf entry to be written into the container: path is the
// storage nesting (empty for a root-level stream), name is the stream's
// own name.
type Stream struct {
	Path []string
	Name string
	Data []byte
}

type dirEntry struct {
	name         string
	objType      byte
	leftSibling  uint32
	rightSibling uint32
	child        uint32
	startSector  uint32
	size         uint64
}

// storageNode groups the streams and sub-storages directly inside one
// storage, keyed by the storage's own directory index.
type storageNode struct {
	dirIndex uint32
	children map[string]uint32 // name -> dirIndex, mixed streams and storages
}

// Write serialises streams into a CFB document and writes it to w. Every
// stream, regardless of size, is allocated from the regular FAT: the
// Mini Stream Cutoff Size field is written as 0, which per the format
// means no stream ever qualifies for the mini stream, letting this
// implementation skip the mini-FAT entirely.
func Write(w io.Writer, streams []Stream) error {
	b := &builder{
		entries:  []dirEntry{{name: "Root Entry", objType: objRoot, leftSibling: noStream, rightSibling: noStream, child: noStream}},
		storages: map[string]*storageNode{"": {dirIndex: 0, children: map[string]uint32{}}},
	}

	for _, s := range streams {
		b.addStream(s.Path, s.Name, s.Data)
	}
	b.linkChildren()

	return b.serialize(w)
}

type builder struct {
	entries    []dirEntry
	storages   map[string]*storageNode
	streamData []streamPayload
}

func storageKey(path []string) string { return strings.Join(path, "/") }

// ensureStorage returns the directory index of the storage at path,
// creating it (and any missing ancestors) if necessary.
func (b *builder) ensureStorage(path []string) uint32 {
	key := storageKey(path)
	if node, ok := b.storages[key]; ok {
		return node.dirIndex
	}

	b.ensureStorage(path[:len(path)-1])
	name := path[len(path)-1]

	idx := uint32(len(b.entries))
	b.entries = append(b.entries, dirEntry{
		name: name, objType: objStorage,
		leftSibling: noStream, rightSibling: noStream, child: noStream,
	})
	b.storages[key] = &storageNode{dirIndex: idx, children: map[string]uint32{}}
	b.storages[storageKey(path[:len(path)-1])].children[name] = idx
	return idx
}

func (b *builder) addStream(path []string, name string, data []byte) {
	b.ensureStorage(path)
	idx := uint32(len(b.entries))
	b.entries = append(b.entries, dirEntry{
		name: name, objType: objStream,
		leftSibling: noStream, rightSibling: noStream, child: noStream,
		size: uint64(len(data)),
	})
	b.storages[storageKey(path)].children[name] = idx
	b.streamData = append(b.streamData, streamPayload{dirIndex: idx, data: data})
}

type streamPayload struct {
	dirIndex uint32
	data     []byte
}

// linkChildren builds each storage's sibling tree from its collected
// children and sets the storage entry's own child pointer to its root.
func (b *builder) linkChildren() {
	for _, node := range b.storages {
		if len(node.children) == 0 {
			continue
		}
		type kv struct {
			name string
			idx  uint32
		}
		kvs := make([]kv, 0, len(node.children))
		for name, idx := range node.children {
			kvs = append(kvs, kv{name, idx})
		}
		sort.Slice(kvs, func(i, j int) bool { return cfbNameLess(kvs[i].name, kvs[j].name) })

		var build func(items []kv) uint32
		build = func(items []kv) uint32 {
			if len(items) == 0 {
				return noStream
			}
			mid := len(items) / 2
			root := items[mid]
			b.entries[root.idx].leftSibling = build(items[:mid])
			b.entries[root.idx].rightSibling = build(items[mid+1:])
			return root.idx
		}
		b.entries[node.dirIndex].child = build(kvs)
	}
}

// cfbNameLess implements the directory-entry ordering rule: shorter
// names sort first, ties broken by case-insensitive ordinal comparison.
func cfbNameLess(a, bName string) bool {
	if len(a) != len(bName) {
		return len(a) < len(bName)
	}
	return strings.ToUpper(a) < strings.ToUpper(bName)
}

func (b *builder) serialize(w io.Writer) error {
	sectorsUsed := 0

	// Allocate data sectors for every non-empty stream.
	fatChain := make([]uint32, 0, 256)
	dataSectors := make([][]byte, 0, 256)

	for _, sp := range b.streamData {
		n := len(sp.data)
		if n == 0 {
			b.entries[sp.dirIndex].startSector = endOfChain
			continue
		}
		start := uint32(sectorsUsed)
		b.entries[sp.dirIndex].startSector = start

		nSectors := (n + sectorSize - 1) / sectorSize
		for i := 0; i < nSectors; i++ {
			chunk := make([]byte, sectorSize)
			lo := i * sectorSize
			hi := lo + sectorSize
			if hi > n {
				hi = n
			}
			copy(chunk, sp.data[lo:hi])
			dataSectors = append(dataSectors, chunk)

			if i == nSectors-1 {
				fatChain = append(fatChain, endOfChain)
			} else {
				fatChain = append(fatChain, uint32(sectorsUsed+1))
			}
			sectorsUsed++
		}
	}

	// Pad directory entries to a multiple of 4 per sector and serialise.
	for len(b.entries)%((sectorSize)/dirEntrySize) != 0 {
		b.entries = append(b.entries, dirEntry{objType: objUnknown, leftSibling: noStream, rightSibling: noStream, child: noStream})
	}
	dirSectorCount := len(b.entries) / (sectorSize / dirEntrySize)
	dirStart := uint32(sectorsUsed)
	for i := 0; i < dirSectorCount; i++ {
		if i == dirSectorCount-1 {
			fatChain = append(fatChain, endOfChain)
		} else {
			fatChain = append(fatChain, uint32(sectorsUsed+1))
		}
		sectorsUsed++
	}

	// Solve for the number of FAT sectors needed to describe
	// sectorsUsed data+directory sectors plus the FAT sectors themselves.
	fatSectorCount := 1
	for {
		total := sectorsUsed + fatSectorCount
		needed := (total + 127) / 128
		if needed <= fatSectorCount {
			break
		}
		fatSectorCount = needed
	}
	if fatSectorCount > 109 {
		return altiumerr.FileWrite("", fmt.Errorf("library too large for single-DIFAT CFB writer (%d FAT sectors needed)", fatSectorCount))
	}

	fatStart := uint32(sectorsUsed)
	for i := 0; i < fatSectorCount; i++ {
		fatChain = append(fatChain, fatSectMark)
	}
	sectorsUsed += fatSectorCount

	// Build FAT sector contents.
	fatEntries := make([]uint32, fatSectorCount*128)
	for i := range fatEntries {
		fatEntries[i] = freeSect
	}
	copy(fatEntries, fatChain)

	if err := writeHeader(w, uint32(fatSectorCount), dirStart, fatStart); err != nil {
		return err
	}
	for _, sec := range dataSectors {
		if _, err := w.Write(sec); err != nil {
			return errors.Wrap(err, "writing data sector")
		}
	}
	for i := 0; i < dirSectorCount; i++ {
		buf := make([]byte, sectorSize)
		for j := 0; j < sectorSize/dirEntrySize; j++ {
			encodeDirEntry(buf[j*dirEntrySize:(j+1)*dirEntrySize], b.entries[i*(sectorSize/dirEntrySize)+j])
		}
		if _, err := w.Write(buf); err != nil {
			return errors.Wrap(err, "writing directory sector")
		}
	}
	for i := 0; i < fatSectorCount; i++ {
		buf := make([]byte, sectorSize)
		for j := 0; j < 128; j++ {
			binary.LittleEndian.PutUint32(buf[j*4:], fatEntries[i*128+j])
		}
		if _, err := w.Write(buf); err != nil {
			return errors.Wrap(err, "writing FAT sector")
		}
	}
	return nil
}

func writeHeader(w io.Writer, fatSectorCount, dirStart, fatStart uint32) error {
	var h [sectorSize]byte
	binary.LittleEndian.PutUint64(h[0:8], 0xE11AB1A1E011CFD0)
	binary.LittleEndian.PutUint16(h[24:26], 0x003E)
	binary.LittleEndian.PutUint16(h[26:28], 0x0003)
	binary.LittleEndian.PutUint16(h[28:30], 0xFFFE)
	binary.LittleEndian.PutUint16(h[30:32], 0x0009)
	binary.LittleEndian.PutUint16(h[32:34], 0x0006)
	binary.LittleEndian.PutUint32(h[40:44], 0)
	binary.LittleEndian.PutUint32(h[44:48], fatSectorCount)
	binary.LittleEndian.PutUint32(h[48:52], dirStart)
	binary.LittleEndian.PutUint32(h[56:60], 0) // mini stream cutoff size
	binary.LittleEndian.PutUint32(h[60:64], endOfChain)
	binary.LittleEndian.PutUint32(h[64:68], 0)
	binary.LittleEndian.PutUint32(h[68:72], endOfChain)
	binary.LittleEndian.PutUint32(h[72:76], 0)

	for i := 0; i < 109; i++ {
		off := 76 + i*4
		if i < int(fatSectorCount) {
			binary.LittleEndian.PutUint32(h[off:off+4], fatStart+uint32(i))
		} else {
			binary.LittleEndian.PutUint32(h[off:off+4], freeSect)
		}
	}

	_, err := w.Write(h[:])
	if err != nil {
		return errors.Wrap(err, "writing CFB header")
	}
	return nil
}

func encodeDirEntry(buf []byte, e dirEntry) {
	units := utf16.Encode([]rune(e.name))
	nameBytes := len(units)*2 + 2
	if nameBytes > 64 {
		nameBytes = 64
		units = units[:31]
		nameBytes = len(units)*2 + 2
	}
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	binary.LittleEndian.PutUint16(buf[64:66], uint16(nameBytes))
	buf[66] = e.objType
	buf[67] = 1 // color: black: this codec does not balance the tree for true red-black coloring
	binary.LittleEndian.PutUint32(buf[68:72], e.leftSibling)
	binary.LittleEndian.PutUint32(buf[72:76], e.rightSibling)
	binary.LittleEndian.PutUint32(buf[76:80], e.child)
	binary.LittleEndian.PutUint32(buf[116:120], e.startSector)
	binary.LittleEndian.PutUint64(buf[120:128], e.size)
}
