package ndarray

import "unsafe"

// storage is the raw element buffer of exactly one Array.
type storage struct {
	data []byte
}

// allocate returns a zeroed buffer holding numElements elements of dtype.
func allocate(numElements int, dtype DataType) *storage {
	return &storage{
		data: make([]byte, numElements*dtype.Size()),
	}
}

// release drops the buffer. Releasing twice is a no-op.
func (s *storage) release() {
	s.data = nil
}

func (s *storage) released() bool {
	return s.data == nil
}

func (s *storage) int32s() []int32 {
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the byte size
	return unsafe.Slice((*int32)(unsafe.Pointer(&s.data[0])), len(s.data)/4)
}

func (s *storage) float32s() []float32 {
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the byte size
	return unsafe.Slice((*float32)(unsafe.Pointer(&s.data[0])), len(s.data)/4)
}

// clone returns an independent copy of the buffer.
func (s *storage) clone() *storage {
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return &storage{data: data}
}
