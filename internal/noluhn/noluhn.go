package noluhn

const (
	// AlphabetA is the canonical URL-safe base64 alphabet.
	AlphabetA = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	// AlphabetB is AlphabetA with the ten digits replaced by letters.
	// It contains no digit characters.
	AlphabetB = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyzNUMBRnumbr-_"

	// FillerIndex is the index in AlphabetA written in place of the characters
	// a partial final block has no bytes for.
	FillerIndex = 63

	// BytesInBlock is the number of source bytes encoded by one block.
	BytesInBlock = 3

	// CharsInBlock is the number of characters produced per block.
	CharsInBlock = 4
)

const (
	mask6Bits = 0x3F
	shift6    = 6
	shift8    = 8
)

// CharLength returns the encoded length in characters of n source bytes.
func CharLength(n int) int {
	return ((n + (BytesInBlock - 1)) / BytesInBlock) * CharsInBlock
}

// Encode returns the identifier text for src.
func Encode(src []byte) []byte {
	out := make([]byte, CharLength(len(src)))

	for i, o := 0, 0; i < len(src); i, o = i+BytesInBlock, o+CharsInBlock {
		trip := i+1 < len(src)
		quad := i+2 < len(src)

		val := uint32(src[i]) << shift8
		if trip {
			val |= uint32(src[i+1])
		}

		val <<= shift8
		if quad {
			val |= uint32(src[i+2])
		}

		out[o+3] = AlphabetA[FillerIndex]
		if quad {
			out[o+3] = AlphabetA[val&mask6Bits]
		}

		val >>= shift6

		out[o+2] = AlphabetA[FillerIndex]
		if trip {
			out[o+2] = AlphabetA[val&mask6Bits]
		}

		val >>= shift6
		out[o+1] = AlphabetA[val&mask6Bits]

		val >>= shift6
		out[o] = leading(i + BytesInBlock)[val&mask6Bits]
	}

	return out
}

// EncodeToString returns the identifier text for src as a string.
func EncodeToString(src []byte) string {
	return string(Encode(src))
}

// leading picks the alphabet for the first character of a block from the
// number of bytes consumed once the block is done.
func leading(consumed int) string {
	if consumed&1 != 0 {
		return AlphabetA
	}

	return AlphabetB
}
