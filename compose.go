package uniprop

import (
	"context"
	"sort"

	pool "github.com/jolestar/go-commons-pool"
)

// Hangul syllable composition is algorithmic and not tabulated; these are
// the constants from chapter 3.12 of the Unicode standard.
const (
	hangulSBase  = 0xAC00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = hangulLCount * hangulNCount // 11172
)

// maxDecompDepth bounds the recursive expansion of tabulated mappings. The
// UCD guarantees a small maximum nesting of canonical mappings; the bound
// is enforced explicitly rather than trusting the table to be acyclic.
const maxDecompDepth = 8

// maxDecompExpansion is the worst-case length of a single character's full
// compatibility decomposition in the UCD.
const maxDecompExpansion = 18

// Decompose is one decomposition pass over a single source character: a
// finite, restartable sequence of scalar values. The expansion is computed
// up front into a fixed buffer; iteration is a plain cursor and Reset
// restarts the same sequence. Re-deriving the sequence for the same source
// character always yields identical results.
type Decompose struct {
	source rune
	compat bool
	length int8
	cursor int8
	buf    [maxDecompExpansion]rune
}

// DecomposeRune returns the canonical decomposition sequence of r. If r has
// no canonical decomposition the sequence is exactly [r].
//
// r must be a Unicode scalar value (see Lookup).
func DecomposeRune(r rune) Decompose {
	return makeDecompose(r, false)
}

// DecomposeCompat returns the compatibility decomposition sequence of r, a
// superset of the canonical decomposition which additionally unfolds
// width, font and formatting variants.
func DecomposeCompat(r rune) Decompose {
	return makeDecompose(r, true)
}

func makeDecompose(r rune, compat bool) Decompose {
	if !isScalarValue(r) {
		tracer().Errorf("uniprop: decomposition of invalid scalar value %#U", r)
		panic("uniprop: decompose called with invalid scalar value")
	}
	d := Decompose{source: r, compat: compat}
	d.length = int8(len(expand(d.buf[:0], r, compat, 0)))
	return d
}

// expand appends the full decomposition of r to dst, recursively unfolding
// tabulated mappings up to maxDecompDepth levels. Hangul syllables are
// expanded arithmetically; their jamo never decompose further.
func expand(dst []rune, r rune, compat bool, depth int) []rune {
	if depth >= maxDecompDepth {
		tracer().Errorf("uniprop: decomposition of %#U exceeds depth bound", r)
		return append(dst, r)
	}
	if r >= hangulSBase && r < hangulSBase+hangulSCount {
		return appendHangul(dst, r)
	}
	if seq, ok := decompositionFor(r, compat); ok {
		for _, s := range seq {
			dst = expand(dst, s, compat, depth+1)
		}
		return dst
	}
	return append(dst, r)
}

// appendHangul decomposes a precomposed Hangul syllable into two or three
// jamo, computed from the syllable's offset within the Hangul block.
func appendHangul(dst []rune, s rune) []rune {
	idx := s - hangulSBase
	dst = append(dst, hangulLBase+idx/hangulNCount)
	dst = append(dst, hangulVBase+(idx%hangulNCount)/hangulTCount)
	if t := idx % hangulTCount; t != 0 {
		dst = append(dst, hangulTBase+t)
	}
	return dst
}

// decompositionFor finds the single-step tabulated mapping for r, if any.
// Compatibility-only mappings are skipped unless compat is set.
func decompositionFor(r rune, compat bool) ([]rune, bool) {
	n := len(decompositions)
	i := sort.Search(n, func(i int) bool { return decompositions[i].ch >= r })
	if i < n && decompositions[i].ch == r {
		e := &decompositions[i]
		if e.compat && !compat {
			return nil, false
		}
		return e.seq, true
	}
	return nil, false
}

// Next returns the next scalar value of the sequence. ok is false after the
// sequence is exhausted.
func (d *Decompose) Next() (r rune, ok bool) {
	if d.cursor >= d.length {
		return 0, false
	}
	r = d.buf[d.cursor]
	d.cursor++
	return r, true
}

// Len returns the number of scalar values in the sequence.
func (d *Decompose) Len() int {
	return int(d.length)
}

// Source returns the character this sequence was derived from.
func (d *Decompose) Source() rune {
	return d.source
}

// Reset restarts the sequence from its beginning.
func (d *Decompose) Reset() {
	d.cursor = 0
}

// Runes returns the remaining sequence as a slice. The slice aliases the
// sequence's internal buffer and stays valid for the lifetime of d.
func (d *Decompose) Runes() []rune {
	return d.buf[d.cursor:d.length]
}

// ComposePair returns the canonical composition of the ordered pair (a, b),
// or false if the pair has no registered composition or is excluded from
// composition. This is a single pairwise step; iterating composition over a
// string is the job of a normalizer built on top.
func ComposePair(a, b rune) (rune, bool) {
	if c, ok := composeHangul(a, b); ok {
		return c, true
	}
	n := len(compositions)
	i := sort.Search(n, func(i int) bool {
		e := &compositions[i]
		return e.first > a || (e.first == a && e.second >= b)
	})
	if i < n && compositions[i].first == a && compositions[i].second == b {
		return compositions[i].composed, true
	}
	return 0, false
}

// composeHangul composes leading jamo + vowel into an LV syllable, or an
// LV syllable + trailing jamo into an LVT syllable.
func composeHangul(a, b rune) (rune, bool) {
	if a >= hangulLBase && a < hangulLBase+hangulLCount &&
		b >= hangulVBase && b < hangulVBase+hangulVCount {
		l := a - hangulLBase
		v := b - hangulVBase
		return hangulSBase + (l*hangulVCount+v)*hangulTCount, true
	}
	if a >= hangulSBase && a < hangulSBase+hangulSCount && (a-hangulSBase)%hangulTCount == 0 &&
		b > hangulTBase && b < hangulTBase+hangulTCount {
		return a + (b - hangulTBase), true
	}
	return 0, false
}

// IsCompositionExclusion returns true if r has a canonical decomposition
// but must never be regenerated by composing its decomposed parts (the
// full composition exclusion set, including singleton and non-starter
// decompositions).
func IsCompositionExclusion(r rune) bool {
	n := len(compositionExclusions)
	i := sort.Search(n, func(i int) bool { return compositionExclusions[i] >= r })
	return i < n && compositionExclusions[i] == r
}

// --- Pooled working buffers ------------------------------------------------

// Decompose values used by the string-level helper are short-lived scratch
// objects. To avoid re-allocating their expansion buffers under batch load
// we pool them.
type decomposerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalDecomposerPool *decomposerPool

func init() {
	globalDecomposerPool = &decomposerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Decompose{}, nil
		})
	globalDecomposerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalDecomposerPool.opool = pool.NewObjectPool(globalDecomposerPool.ctx, factory, config)
}

func borrowDecomposer(r rune, compat bool) *Decompose {
	o, _ := globalDecomposerPool.opool.BorrowObject(globalDecomposerPool.ctx)
	d := o.(*Decompose)
	d.source = r
	d.compat = compat
	d.cursor = 0
	d.length = int8(len(expand(d.buf[:0], r, compat, 0)))
	return d
}

func (d *Decompose) releaseIntoPool() {
	d.source = 0
	d.length = 0
	d.cursor = 0
	_ = globalDecomposerPool.opool.ReturnObject(globalDecomposerPool.ctx, d)
}

// AppendDecomposed appends the per-rune decomposition of every code-point
// of s to dst and returns the extended slice. With compat set,
// compatibility mappings are applied. This is the raw expansion pass a
// normalizer starts from; no reordering of combining marks is performed.
func AppendDecomposed(dst []rune, s string, compat bool) []rune {
	for _, r := range s {
		d := borrowDecomposer(r, compat)
		dst = append(dst, d.Runes()...)
		d.releaseIntoPool()
	}
	return dst
}
