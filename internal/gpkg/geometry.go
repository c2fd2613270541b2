package gpkg

import (
	"bytes"
	"encoding/binary"

	"github.com/paulmach/orb"
)

// EncodeLineString produces a GeoPackage geometry BLOB: the standard
// GPKG binary header (magic "GP", version 0, flags, SRS id) followed by
// a little-endian WKB LineString, per the OGC GeoPackage spec §2.1.3.
func EncodeLineString(line orb.LineString, srsID int32) []byte {
	return encodeGPKG(encodeWKBLineString(line), srsID)
}

// EncodeMultiLineString produces a GeoPackage geometry BLOB for a
// FinalEdge's (possibly disjoint) merged geometry: the GPKG binary
// header followed by a little-endian WKB MultiLineString, per the OGC
// GeoPackage spec §2.1.3.
func EncodeMultiLineString(lines orb.MultiLineString, srsID int32) []byte {
	return encodeGPKG(encodeWKBMultiLineString(lines), srsID)
}

func encodeGPKG(wkb []byte, srsID int32) []byte {
	var buf bytes.Buffer
	buf.WriteByte('G')
	buf.WriteByte('P')
	buf.WriteByte(0) // version
	buf.WriteByte(1) // flags: little-endian, no envelope
	binary.Write(&buf, binary.LittleEndian, srsID)
	buf.Write(wkb)
	return buf.Bytes()
}

func encodeWKBLineString(line orb.LineString) []byte {
	var buf bytes.Buffer
	buf.WriteByte(1) // little-endian
	binary.Write(&buf, binary.LittleEndian, uint32(2)) // geometry type 2 = LineString
	binary.Write(&buf, binary.LittleEndian, uint32(len(line)))
	for _, p := range line {
		binary.Write(&buf, binary.LittleEndian, p[0])
		binary.Write(&buf, binary.LittleEndian, p[1])
	}
	return buf.Bytes()
}

func encodeWKBMultiLineString(lines orb.MultiLineString) []byte {
	var buf bytes.Buffer
	buf.WriteByte(1) // little-endian
	binary.Write(&buf, binary.LittleEndian, uint32(5)) // geometry type 5 = MultiLineString
	binary.Write(&buf, binary.LittleEndian, uint32(len(lines)))
	for _, line := range lines {
		buf.Write(encodeWKBLineString(line))
	}
	return buf.Bytes()
}
