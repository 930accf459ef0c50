package cohort

import (
	"encoding/binary"
	"fmt"

	"distmst/mst"
)

// EncodeEdges serializes an edge list to the wire format the protocol
// specifies: a 32-bit count n, followed by 3n 32-bit integers
// (i0,j0,w0,i1,j1,w1,...). The encoding commits to little-endian, fixed
// width, so it is meaningful independent of whatever integer
// representation either peer's process happens to use internally.
func EncodeEdges(edges []mst.Edge) []byte {
	buf := make([]byte, 4+12*len(edges))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(edges)))
	for idx, e := range edges {
		off := 4 + idx*12
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(e.I))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], uint32(e.J))
		binary.LittleEndian.PutUint32(buf[off+8:off+12], uint32(e.W))
	}
	return buf
}

// DecodeEdges is the inverse of EncodeEdges. It returns an error if buf
// is too short for the count it declares.
func DecodeEdges(buf []byte) ([]mst.Edge, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("cohort: edge list buffer too short: %d bytes", len(buf))
	}
	n := int(binary.LittleEndian.Uint32(buf[0:4]))
	want := 4 + 12*n
	if len(buf) != want {
		return nil, fmt.Errorf("cohort: edge list buffer has %d bytes, want %d for n=%d", len(buf), want, n)
	}
	edges := make([]mst.Edge, n)
	for idx := 0; idx < n; idx++ {
		off := 4 + idx*12
		i := int(binary.LittleEndian.Uint32(buf[off : off+4]))
		j := int(binary.LittleEndian.Uint32(buf[off+4 : off+8]))
		w := int(binary.LittleEndian.Uint32(buf[off+8 : off+12]))
		edges[idx] = mst.Edge{I: i, J: j, W: w}
	}
	return edges, nil
}

// EncodeTriple serializes a candidate-vertex triple (y, z, w) as used by
// distributed Prim's gather step. y == -1 encodes the sentinel "no
// candidate".
func EncodeTriple(y, z, w int) []byte {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(int32(y)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(int32(z)))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(int32(w)))
	return buf
}

// DecodeTriple is the inverse of EncodeTriple.
func DecodeTriple(buf []byte) (y, z, w int, err error) {
	if len(buf) != 12 {
		return 0, 0, 0, fmt.Errorf("cohort: triple buffer has %d bytes, want 12", len(buf))
	}
	y = int(int32(binary.LittleEndian.Uint32(buf[0:4])))
	z = int(int32(binary.LittleEndian.Uint32(buf[4:8])))
	w = int(int32(binary.LittleEndian.Uint32(buf[8:12])))
	return y, z, w, nil
}

// EncodeUint32 and DecodeUint32 encode a single collective value (used
// for broadcasting the winning vertex in distributed Prim).
func EncodeUint32(v int) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(int32(v)))
	return buf
}

func DecodeUint32(buf []byte) (int, error) {
	if len(buf) != 4 {
		return 0, fmt.Errorf("cohort: uint32 buffer has %d bytes, want 4", len(buf))
	}
	return int(int32(binary.LittleEndian.Uint32(buf))), nil
}
