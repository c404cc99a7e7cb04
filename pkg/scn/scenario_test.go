package scn

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamBuilder assembles synthetic scenario bytes for tests.
type streamBuilder struct {
	buf bytes.Buffer
}

func (b *streamBuilder) u8(v uint8) { b.buf.WriteByte(v) }
func (b *streamBuilder) u16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf.Write(tmp[:])
}
func (b *streamBuilder) u32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
}
func (b *streamBuilder) f32(v float32) { b.u32(math.Float32bits(v)) }

// sized writes s padded with NUL to exactly n bytes.
func (b *streamBuilder) sized(s string, n int) {
	b.buf.WriteString(s)
	for i := len(s); i < n; i++ {
		b.buf.WriteByte(0)
	}
}

func (b *streamBuilder) bytes() []byte { return b.buf.Bytes() }

// header writes a well-formed "1.11" header with the given instructions.
func (b *streamBuilder) header(instructions string, playerCount uint32) {
	b.sized("1.11", 4)
	b.u32(0)          // length, informational
	b.u32(2)          // save type
	b.u32(1234567890) // last save time
	b.u32(uint32(len(instructions)))
	b.buf.WriteString(instructions)
	b.u32(0) // victory type
	b.u32(playerCount)
}

// playerData writes a minimal player metadata block.
func (b *streamBuilder) playerData() {
	for i := 0; i < playerSlotCount; i++ {
		b.sized("", 64)
	}
	for i := 0; i < playerSlotCount; i++ {
		b.u32(0) // active
		b.u32(0) // human
		b.u32(0) // civilization
	}
}

// gameMap writes a w*h map of zero tiles.
func (b *streamBuilder) gameMap(w, h uint32) {
	b.u32(w)
	b.u32(h)
	for i := uint32(0); i < w*h; i++ {
		b.u8(0) // terrain
		b.u8(0) // elevation
		b.u8(0) // overlay
	}
}

func (b *streamBuilder) resources(recs ...PlayerResources) {
	b.u32(uint32(len(recs)))
	for _, r := range recs {
		b.u32(r.Gold)
		b.u32(r.Wood)
		b.u32(r.Food)
		b.u32(r.Stone)
	}
}

func (b *streamBuilder) unit(u PlayerUnit) {
	b.f32(u.X)
	b.f32(u.Y)
	b.f32(u.Z)
	b.u32(u.ID)
	b.u16(u.TypeID)
	b.u8(u.State)
	b.f32(u.Rotation)
}

// deflate compresses raw the way the scenario body is stored.
func deflateBytes(t *testing.T, raw []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	fw, err := flate.NewWriter(&out, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = fw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, fw.Close())
	return out.Bytes()
}

// minimalBody builds a body with one unit group holding the given units.
func minimalBody(t *testing.T, units []PlayerUnit) []byte {
	t.Helper()
	var b streamBuilder
	b.u32(0) // reserved next unit id
	b.playerData()
	b.gameMap(2, 2)
	b.u32(1) // unit group count
	b.resources(PlayerResources{Gold: 100, Wood: 200, Food: 300, Stone: 400})
	b.u32(uint32(len(units)))
	for _, u := range units {
		b.unit(u)
	}
	return b.bytes()
}

func minimalFile(t *testing.T, units []PlayerUnit) []byte {
	t.Helper()
	var b streamBuilder
	b.header("", 1)
	return append(b.bytes(), deflateBytes(t, minimalBody(t, units))...)
}

func TestReadFromStream_MinimalValid(t *testing.T) {
	s, err := ReadFromStream(bytes.NewReader(minimalFile(t, nil)))
	require.NoError(t, err)

	assert.Equal(t, "1.11", s.Header.Version)
	assert.Equal(t, int32(2), s.Header.SaveType)
	assert.Equal(t, uint32(1234567890), s.Header.LastSaveTime)
	assert.Equal(t, "", s.Header.Instructions)
	assert.Equal(t, uint32(1), s.Header.PlayerCount)

	assert.Equal(t, uint32(2), s.Map.Width)
	assert.Equal(t, uint32(2), s.Map.Height)
	assert.Len(t, s.Map.Tiles, 4)

	require.Equal(t, 1, s.UnitGroupCount())
	assert.Empty(t, s.PlayerUnits(0))
	assert.Equal(t, PlayerResources{Gold: 100, Wood: 200, Food: 300, Stone: 400}, s.PlayerResources(0))
	assert.Equal(t, []int{0}, s.PlayerIDs())
}

func TestReadFromStream_UnitsInReadOrder(t *testing.T) {
	units := []PlayerUnit{
		{X: 1.5, Y: 2.5, Z: 0, ID: 10, TypeID: 83, State: 2, Rotation: 0.5},
		{X: 8, Y: 3, Z: 1, ID: 11, TypeID: 109, State: 2, Rotation: 1.25},
	}
	s, err := ReadFromStream(bytes.NewReader(minimalFile(t, units)))
	require.NoError(t, err)

	require.Equal(t, 1, s.UnitGroupCount())
	assert.Equal(t, units, s.PlayerUnits(0))
}

func TestReadFromStream_Deterministic(t *testing.T) {
	data := minimalFile(t, []PlayerUnit{{ID: 1, TypeID: 83}})

	a, err := ReadFromStream(bytes.NewReader(data))
	require.NoError(t, err)
	b, err := ReadFromStream(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestReadFromStream_UnrecognizedVersion(t *testing.T) {
	var b streamBuilder
	b.sized("1.10", 4)
	b.u32(0)

	_, err := ReadFromStream(bytes.NewReader(b.bytes()))
	require.ErrorIs(t, err, ErrUnrecognizedVersion)
}

func TestReadFromStream_TruncatedHeader(t *testing.T) {
	var b streamBuilder
	b.header("", 1)
	data := b.bytes()

	// Cut mid-header: version plus half of the length field.
	_, err := ReadFromStream(bytes.NewReader(data[:6]))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFromStream_CorruptBody(t *testing.T) {
	var b streamBuilder
	b.header("", 1)
	data := append(b.bytes(), 0xde, 0xad, 0xbe, 0xef)

	_, err := ReadFromStream(bytes.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decompress body")
}

func TestReadFromStream_TruncatedBody(t *testing.T) {
	var b streamBuilder
	b.u32(0)
	b.playerData()
	// map cut short: dimensions promise more tiles than exist
	b.u32(4)
	b.u32(4)

	var f streamBuilder
	f.header("", 1)
	data := append(f.bytes(), deflateBytes(t, b.bytes())...)

	_, err := ReadFromStream(bytes.NewReader(data))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFromStream_HostileMapDimensions(t *testing.T) {
	// Dimensions whose product overflows an int must surface as a decode
	// error, not crash the caller.
	var b streamBuilder
	b.u32(0)
	b.playerData()
	b.u32(0xFFFFFFFF) // width
	b.u32(0xFFFFFFFF) // height

	var f streamBuilder
	f.header("", 1)
	data := append(f.bytes(), deflateBytes(t, b.bytes())...)

	require.NotPanics(t, func() {
		_, err := ReadFromStream(bytes.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tiles")
	})
}

func TestReadFromStream_OversizedUnitCount(t *testing.T) {
	var b streamBuilder
	b.u32(0)
	b.playerData()
	b.gameMap(1, 1)
	b.u32(1) // unit group count
	b.resources(PlayerResources{})
	b.u32(0x7FFFFFFF) // declared units, none present

	var f streamBuilder
	f.header("", 1)
	data := append(f.bytes(), deflateBytes(t, b.bytes())...)

	_, err := ReadFromStream(bytes.NewReader(data))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.scn")
	require.NoError(t, os.WriteFile(path, minimalFile(t, nil), 0644))

	s, err := ReadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.11", s.Header.Version)

	_, err = ReadFromFile(filepath.Join(t.TempDir(), "missing.scn"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
