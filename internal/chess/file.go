package chess

// File is a vertical line of the board, a through h.
type File uint8

const (
	FileA File = iota + 1
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Offset returns the file n steps toward h (negative n toward a). The second
// return value is false when the result would leave the board.
func (f File) Offset(n int) (File, bool) {
	v := int(f) + n
	if v < 1 || v > 8 {
		return 0, false
	}
	return File(v), true
}

func (f File) String() string {
	return string('a' + rune(f) - 1)
}

func fileFromByte(b byte) (File, bool) {
	switch {
	case b >= 'a' && b <= 'h':
		return File(b-'a') + 1, true
	case b >= 'A' && b <= 'H':
		return File(b-'A') + 1, true
	}
	return 0, false
}
