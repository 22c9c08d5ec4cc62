package bufrand

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/MichaelTJones/pcg"
	"github.com/brianvoe/gofakeit/v6"
)

// Names of the sources available through Lookup
const (
	SourcePCG64  = "pcg64"
	SourcePCG32  = "pcg32"
	SourceFaker  = "faker"
	SourceCrypto = "crypto"
)

var sources = map[string]func(seed uint64) Source{
	SourcePCG64:  NewPCG64,
	SourcePCG32:  NewPCG32,
	SourceFaker:  func(seed uint64) Source { return NewFaker(int64(seed)) },
	SourceCrypto: func(uint64) Source { return NewCrypto() },
}

// Lookup returns a new source of the given name seeded with seed. The
// crypto source ignores the seed.
func Lookup(name string, seed uint64) (Source, error) {
	newSource, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source '%s'", name)
	}
	return newSource(seed), nil
}

// SourceNames returns the sorted names of the sources known by Lookup.
func SourceNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() uint64

// Uint64 returns f().
func (f SourceFunc) Uint64() uint64 { return f() }

type pcg64Source struct {
	pcg64 *pcg.PCG64
}

// NewPCG64 returns a 64-bit PCG source.
func NewPCG64(seed uint64) Source {
	return &pcg64Source{pcg64: pcg.NewPCG64().Seed(seed, seed, seed, seed)}
}

func (s *pcg64Source) Uint64() uint64 { return s.pcg64.Random() }

type pcg32Source struct {
	pcg32 *pcg.PCG32
}

// NewPCG32 returns a source built on a 32-bit PCG. Each value is made of
// two consecutive outputs, the first one in the high half.
func NewPCG32(seed uint64) Source {
	return &pcg32Source{pcg32: pcg.NewPCG32().Seed(seed, seed)}
}

func (s *pcg32Source) Uint64() uint64 {
	hi := uint64(s.pcg32.Random())
	return hi<<32 | uint64(s.pcg32.Random())
}

type fakerSource struct {
	faker *gofakeit.Faker
}

// NewFaker returns a source backed by a gofakeit Faker.
func NewFaker(seed int64) Source {
	return &fakerSource{faker: gofakeit.New(seed)}
}

func (s *fakerSource) Uint64() uint64 { return s.faker.Uint64() }

type cryptoSource struct{}

// NewCrypto returns a source reading from crypto/rand. It panics if the
// system random generator fails.
func NewCrypto() Source { return cryptoSource{} }

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, err := crand.Read(b[:])
	if err != nil {
		panic(fmt.Sprintf("bufrand: fail to read from crypto/rand: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

type replaySource struct {
	values []uint64
	index  int
}

// NewReplay returns a source that returns values in order, starting over
// once they have all been returned. It returns 0 forever if values is
// empty.
func NewReplay(values ...uint64) Source {
	return &replaySource{values: values}
}

func (s *replaySource) Uint64() uint64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.index == len(s.values) {
		s.index = 0
	}
	v := s.values[s.index]
	s.index++
	return v
}
