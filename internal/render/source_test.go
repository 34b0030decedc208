package render

// seqSource replays scripted Intn results (reduced modulo n) and then
// returns zero forever.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i]
	s.i++
	return v % n
}

func (s *seqSource) Float64() float64 { return 0 }

func zeroSource() *seqSource { return &seqSource{} }
