package pattern

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	DefaultSoupDensity = 0.15
	DefaultSoupScale   = 0.15

	soupAlpha      = 2.0
	soupBeta       = 2.0
	soupIterations = 3
)

// Soup generates a random seed whose density is modulated by Perlin noise,
// so live cells form clusters instead of uniform static.
type Soup struct {
	Width   int
	Height  int
	Density float64 // average fraction of live cells, 0..1
	Scale   float64 // noise frequency; DefaultSoupScale when zero
	Seed    int64   // 0 draws a fresh seed
}

// Generate builds the state. The same non-zero Seed always yields the same cells.
func (s Soup) Generate() (*model.State, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, errors.Errorf("[Soup.Generate] invalid soup size %dx%d", s.Width, s.Height)
	}
	if s.Density < 0 || s.Density > 1 {
		return nil, errors.Errorf("[Soup.Generate] density %v outside [0, 1]", s.Density)
	}

	seed := s.Seed
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return nil, err
		}
	}
	scale := s.Scale
	if scale == 0 {
		scale = DefaultSoupScale
	}

	var (
		noise = perlin.NewPerlin(soupAlpha, soupBeta, soupIterations, seed)
		rng   = rand.New(rand.NewSource(seed))
		state = model.NewState(s.Width, s.Height)
	)
	for y := range s.Height {
		for x := range s.Width {
			n := noise.Noise2D(float64(x)*scale, float64(y)*scale)
			p := min(max(s.Density*(1+n), 0), 1)
			if rng.Float64() < p {
				state.Living.Add(model.Cell{X: x, Y: y})
			}
		}
	}
	return state, nil
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "[newSeed] read random seed")
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
