// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package cellstore

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"github.com/mahak/hbase/internal/base"
)

// Cell slot layout, big-endian throughout:
//
//	4  bytes  key length
//	4  bytes  value length
//	2  bytes  row length
//	N1 bytes  row
//	1  byte   family length
//	N2 bytes  family
//	N3 bytes  qualifier (key length - 2 - N1 - 1 - N2 - 8 - 1)
//	8  bytes  timestamp (big-endian)
//	1  byte   type
//	N4 bytes  value (value length bytes)
//	4  bytes  tags length (0 when the cell carries no tags)
//	N5 bytes  tags
//
// The tags-length field is always present, even when its value is zero:
// that's what lets a byte region packed with consecutive slots be scanned
// back into slot boundaries without guessing whether trailing bytes
// belong to this slot's tags or the next slot's header (see
// NewByteStore).
//
// This layout is required whenever the core interoperates with on-disk file
// formats that hand it an already-encoded byte region.
const (
	keyLenSize    = 4
	valueLenSize  = 4
	rowLenSize    = 2
	familyLenSize = 1
	timestampSize = 8
	typeSize      = 1
	tagsLenSize   = 4
)

// EncodedSize returns the number of bytes EncodeCell will write for c.
func EncodedSize(c base.Cell) int {
	return keyLenSize + valueLenSize +
		rowLenSize + len(c.Row) +
		familyLenSize + len(c.Family) +
		len(c.Qualifier) +
		timestampSize + typeSize +
		len(c.Value) +
		tagsLenSize + len(c.Tags)
}

// EncodeCell appends the wire encoding of c to buf and returns the result.
func EncodeCell(buf []byte, c base.Cell) []byte {
	keyLen := rowLenSize + len(c.Row) + familyLenSize + len(c.Family) +
		len(c.Qualifier) + timestampSize + typeSize
	valueLen := len(c.Value)

	var scratch [8]byte
	binary.BigEndian.PutUint32(scratch[:4], uint32(keyLen))
	buf = append(buf, scratch[:4]...)
	binary.BigEndian.PutUint32(scratch[:4], uint32(valueLen))
	buf = append(buf, scratch[:4]...)

	binary.BigEndian.PutUint16(scratch[:2], uint16(len(c.Row)))
	buf = append(buf, scratch[:2]...)
	buf = append(buf, c.Row...)

	buf = append(buf, byte(len(c.Family)))
	buf = append(buf, c.Family...)

	buf = append(buf, c.Qualifier...)

	binary.BigEndian.PutUint64(scratch[:8], uint64(c.Timestamp))
	buf = append(buf, scratch[:8]...)

	buf = append(buf, byte(c.Kind))

	buf = append(buf, c.Value...)

	binary.BigEndian.PutUint32(scratch[:4], uint32(len(c.Tags)))
	buf = append(buf, scratch[:4]...)
	buf = append(buf, c.Tags...)
	return buf
}

// DecodeCell decodes a single cell slot starting at the beginning of buf.
// buf may hold additional slots past the one being decoded (the
// tags-length field is always present, so the slot's true end is
// unambiguous without an externally supplied boundary); EncodedSize of
// the result gives the number of leading bytes of buf the slot consumed.
func DecodeCell(buf []byte) (base.Cell, error) {
	if len(buf) < keyLenSize+valueLenSize {
		return base.Cell{}, errors.Newf("cellstore: slot too short (%d bytes)", len(buf))
	}
	keyLen := int(binary.BigEndian.Uint32(buf[0:4]))
	valueLen := int(binary.BigEndian.Uint32(buf[4:8]))
	off := keyLenSize + valueLenSize

	if off+rowLenSize > len(buf) {
		return base.Cell{}, errors.Newf("cellstore: truncated row length")
	}
	rowLen := int(binary.BigEndian.Uint16(buf[off : off+rowLenSize]))
	off += rowLenSize
	if off+rowLen > len(buf) {
		return base.Cell{}, errors.Newf("cellstore: truncated row")
	}
	row := buf[off : off+rowLen]
	off += rowLen

	if off+familyLenSize > len(buf) {
		return base.Cell{}, errors.Newf("cellstore: truncated family length")
	}
	famLen := int(buf[off])
	off += familyLenSize
	if off+famLen > len(buf) {
		return base.Cell{}, errors.Newf("cellstore: truncated family")
	}
	family := buf[off : off+famLen]
	off += famLen

	qualLen := keyLen - rowLenSize - rowLen - familyLenSize - famLen - timestampSize - typeSize
	if qualLen < 0 || off+qualLen > len(buf) {
		return base.Cell{}, errors.Newf("cellstore: inconsistent key length %d", keyLen)
	}
	qualifier := buf[off : off+qualLen]
	off += qualLen

	if off+timestampSize+typeSize > len(buf) {
		return base.Cell{}, errors.Newf("cellstore: truncated timestamp/type")
	}
	ts := int64(binary.BigEndian.Uint64(buf[off : off+timestampSize]))
	off += timestampSize
	kind := base.CellKind(buf[off])
	off += typeSize

	if off+valueLen > len(buf) {
		return base.Cell{}, errors.Newf("cellstore: truncated value")
	}
	value := buf[off : off+valueLen]
	off += valueLen

	if off+tagsLenSize > len(buf) {
		return base.Cell{}, errors.Newf("cellstore: truncated tags length")
	}
	tagsLen := int(binary.BigEndian.Uint32(buf[off : off+tagsLenSize]))
	off += tagsLenSize
	var tags []byte
	if tagsLen > 0 {
		if off+tagsLen > len(buf) {
			return base.Cell{}, errors.Newf("cellstore: truncated tags")
		}
		tags = buf[off : off+tagsLen]
		off += tagsLen
	}

	return base.Cell{
		Row:       row,
		Family:    family,
		Qualifier: qualifier,
		Timestamp: ts,
		Kind:      kind,
		Value:     value,
		Tags:      tags,
	}, nil
}
