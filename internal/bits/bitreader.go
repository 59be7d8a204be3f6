package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from most significant
// to least significant within each byte
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

func (br *BitReader) Reset() {
	br.bytes = nil
	br.currentBitIdx = 0
}

// ReadBit returns the next bit, or false for ok once every byte has been consumed
func (br *BitReader) ReadBit() (bit Bit, ok bool) {
	if len(br.bytes) == 0 {
		return false, false
	}

	bit = br.bytes[0]&(0x80>>br.currentBitIdx) != 0
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit, true
}
