package game

// scriptedSource replays fixed die faces in order.
type scriptedSource struct {
	faces []int
	calls int
}

func rolls(faces ...int) *scriptedSource {
	return &scriptedSource{faces: faces}
}

func (s *scriptedSource) Intn(n int) int {
	if s.calls >= len(s.faces) {
		panic("scripted source exhausted")
	}
	face := s.faces[s.calls]
	s.calls++
	if face < 1 || face > n {
		panic("scripted face outside die range")
	}
	return face - 1
}
