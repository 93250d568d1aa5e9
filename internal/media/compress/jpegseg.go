package compress

import "bytes"

var exifHeader = []byte("Exif\x00\x00")

// exifSegment returns the raw APP1 Exif segment (marker included) from a
// JPEG byte stream, or nil if the stream has none before the scan data.
func exifSegment(data []byte) []byte {
	if len(data) < 4 || data[0] != 0xff || data[1] != 0xd8 {
		return nil
	}

	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xff {
			return nil
		}
		marker := data[i+1]
		if marker == 0xda {
			// Start of scan; metadata segments ended.
			return nil
		}
		size := int(data[i+2])<<8 | int(data[i+3])
		if size < 2 || i+2+size > len(data) {
			return nil
		}
		if marker == 0xe1 && bytes.HasPrefix(data[i+4:i+2+size], exifHeader) {
			return data[i : i+2+size]
		}
		i += 2 + size
	}
	return nil
}

// withExifSegment splices the source's Exif APP1 segment into a re-encoded
// JPEG, directly after the SOI marker. Go's encoder emits no APP1 of its own,
// so the insert cannot collide with an existing segment.
func withExifSegment(encoded, source []byte) []byte {
	if encoded == nil {
		return nil
	}
	seg := exifSegment(source)
	if seg == nil || len(encoded) < 2 {
		return encoded
	}

	out := make([]byte, 0, len(encoded)+len(seg))
	out = append(out, encoded[:2]...)
	out = append(out, seg...)
	out = append(out, encoded[2:]...)
	return out
}
