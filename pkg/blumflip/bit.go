package blumflip

// Bit is a single protocol bit restricted to the values 0 and 1.
type Bit uint8

// Valid reports whether b is 0 or 1.
func (b Bit) Valid() bool { return b <= 1 }

// Xor combines two bits; the protocol's shared coin is m.Xor(b).
func (b Bit) Xor(other Bit) Bit { return b ^ other }

// BitFromInt maps any integer onto a bit by parity, folding negative values
// onto their positive residue.
func BitFromInt(v int64) Bit {
	return Bit(((v % 2) + 2) % 2)
}
