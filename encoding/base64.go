package encoding

import "strings"

// Alphabet is the URL-safe base64 alphabet used on the wire: standard
// base64 with '-' and '_' in place of '+' and '/', and no padding
// character. Indices 0-63 map 1:1 to characters.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// decodeTable maps a character code to its 6-bit value. Characters outside
// the alphabet map to 0: decoding is deliberately tolerant of garbage input
// (silently lossy), since the param layer treats any mangled URL text as
// best-effort rather than fatal.
var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]byte {
	var table [256]byte
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = byte(i)
	}

	return table
}

// EncodeBytes transcodes a byte slice to a URL-safe base64 string.
//
// Input is processed in 3-byte groups producing 4 characters each. A final
// partial group emits only the characters that carry data: 2 characters for
// 1 byte, 3 for 2 bytes. No padding is appended, so the output length is
// not necessarily a multiple of 4.
func EncodeBytes(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	out := make([]byte, 0, (len(data)*4+2)/3)

	i := 0
	for ; i+3 <= len(data); i += 3 {
		group := uint32(data[i])<<16 | uint32(data[i+1])<<8 | uint32(data[i+2])
		out = append(out,
			Alphabet[group>>18&63],
			Alphabet[group>>12&63],
			Alphabet[group>>6&63],
			Alphabet[group&63],
		)
	}

	switch len(data) - i {
	case 1:
		group := uint32(data[i]) << 16
		out = append(out, Alphabet[group>>18&63], Alphabet[group>>12&63])
	case 2:
		group := uint32(data[i])<<16 | uint32(data[i+1])<<8
		out = append(out, Alphabet[group>>18&63], Alphabet[group>>12&63], Alphabet[group>>6&63])
	}

	return string(out)
}

// DecodeString transcodes a URL-safe base64 string back to bytes.
//
// Trailing '=' characters are stripped first, then 4-character chunks
// regroup into up to 3 bytes each; a final partial chunk yields only the
// bytes its characters fully cover (2 chars → 1 byte, 3 chars → 2 bytes).
// Unknown characters decode as value 0 rather than failing.
func DecodeString(str string) []byte {
	str = strings.TrimRight(str, "=")
	if len(str) == 0 {
		return nil
	}

	out := make([]byte, 0, len(str)*3/4+1)

	for i := 0; i < len(str); i += 4 {
		end := i + 4
		if end > len(str) {
			end = len(str)
		}
		chunk := str[i:end]

		var group uint32
		for j := 0; j < 4; j++ {
			var v byte
			if j < len(chunk) {
				v = decodeTable[chunk[j]]
			}
			group = group<<6 | uint32(v)
		}

		switch len(chunk) * 6 / 8 {
		case 3:
			out = append(out, byte(group>>16), byte(group>>8), byte(group))
		case 2:
			out = append(out, byte(group>>16), byte(group>>8))
		case 1:
			out = append(out, byte(group>>16))
		}
	}

	return out
}
