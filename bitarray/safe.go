package bitarray

// Safe decorates a BitArray so that indexed access is bounds-checked:
// At and Put return ErrOutOfBounds instead of ignoring unaddressable indices.
// The rest of the BitArray API is forwarded unchanged.
//
// Attrs holds auxiliary data attached to the array; it is never bounds-checked.
type Safe struct {
	*BitArray

	Attrs map[string]interface{}
}

// NewSafe returns a bounds-checked array of length bits.
func NewSafe(length int, opts ...OptionFunc) (*Safe, error) {
	a, err := New(length, opts...)
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}

// Wrap returns a bounds-checked view of a. Both share the same storage.
func Wrap(a *BitArray) *Safe {
	return &Safe{BitArray: a}
}

// At returns the bit at index i.
func (s *Safe) At(i int) (uint8, error) {
	if err := s.CheckOffset(i); err != nil {
		return 0, err
	}
	return s.BitArray.GetBit(i)
}

// Put stores bit at index i.
func (s *Safe) Put(i int, bit uint8) error {
	if err := s.CheckOffset(i); err != nil {
		return err
	}
	_, err := s.BitArray.SetBit(i, bit)
	return err
}

// SetAttr attaches value to the array under key.
func (s *Safe) SetAttr(key string, value interface{}) {
	if s.Attrs == nil {
		s.Attrs = make(map[string]interface{})
	}
	s.Attrs[key] = value
}

// Attr returns the value attached under key.
func (s *Safe) Attr(key string) (interface{}, bool) {
	v, ok := s.Attrs[key]
	return v, ok
}
