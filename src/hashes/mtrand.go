package hashes

import "encoding/binary"

const mtrandLen = 16

// mtState is the full PHP mt_rand generator, as opposed to the
// truncated variant wikihash gets away with.
type mtState struct {
	state [mtN]uint32
	left  uint32
	next  int
}

func (s *mtState) srand(seed uint32) {
	knuthInit(s.state[:], seed)
	s.left = 0
}

func (s *mtState) reload() {
	p := 0
	for i := mtN - mtM; i > 0; i-- {
		s.state[p] = phpTwist(s.state[p+mtM], s.state[p], s.state[p+1])
		p++
	}

	for i := mtM; i > 1; i-- {
		s.state[p] = phpTwist(s.state[p+mtM-mtN], s.state[p], s.state[p+1])
		p++
	}

	s.state[p] = phpTwist(s.state[p+mtM-mtN], s.state[p], s.state[0])

	s.left = mtN
	s.next = 0
}

func (s *mtState) rand() uint32 {
	if s.left == 0 {
		s.reload()
	}

	s.left--
	y := s.state[s.next]
	s.next++

	return temper(y)
}

// mtrand digests a seed into the first four mt_rand() outputs, little
// endian. These are exactly the values an application leaks when it
// exposes mt_rand() results directly.
func mtrand(seed uint32, scratch []byte) []byte {
	var st mtState
	st.srand(seed)

	for i := 0; i < mtrandLen/4; i++ {
		binary.LittleEndian.PutUint32(scratch[i*4:], st.rand()>>1)
	}

	return scratch[:mtrandLen]
}
