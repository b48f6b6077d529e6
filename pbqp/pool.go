// SPDX-License-Identifier: MIT

package pbqp

// Value is the constraint satisfied by every poolable cost type:
// *Vector, *Matrix, *MDVector[M] and *MDMatrix[M].
type Value[T any] interface {
	Hash() uint64
	Equal(T) bool
	Clone() T
}

// Ref is a shared, reference-counted handle to an interned value.
// The value behind a Ref is shared by every holder and must not be mutated.
type Ref[T Value[T]] struct {
	val  T
	hash uint64
	refs int
}

// Value returns the interned value.
func (r *Ref[T]) Value() T { return r.val }

// Hash returns the structural hash the value was interned under.
func (r *Ref[T]) Hash() uint64 { return r.hash }

// Refs returns the number of outstanding references.
func (r *Ref[T]) Refs() int { return r.refs }

// Pool interns cost values so that structurally equal costs share storage.
// Lookups hash the value and confirm with Equal, so hash collisions are safe.
// A Pool is not safe for concurrent use.
type Pool[T Value[T]] struct {
	buckets map[uint64][]*Ref[T]
	size    int
}

// NewPool returns an empty pool.
func NewPool[T Value[T]]() *Pool[T] {
	return &Pool[T]{buckets: make(map[uint64][]*Ref[T])}
}

// NewVectorPool returns a pool of plain cost vectors.
func NewVectorPool() *Pool[*Vector] { return NewPool[*Vector]() }

// NewMatrixPool returns a pool of plain cost matrices.
func NewMatrixPool() *Pool[*Matrix] { return NewPool[*Matrix]() }

// Get returns the shared Ref for a value equal to v, interning a private copy
// of v on first sight. Each call takes one reference.
// Complexity: O(n) for hashing plus O(n) per colliding entry.
func (p *Pool[T]) Get(v T) *Ref[T] {
	h := v.Hash()
	for _, r := range p.buckets[h] {
		if r.val.Equal(v) {
			r.refs++
			return r
		}
	}
	r := &Ref[T]{val: v.Clone(), hash: h, refs: 1}
	p.buckets[h] = append(p.buckets[h], r)
	p.size++

	return r
}

// Release drops one reference; the entry leaves the pool when none remain.
// Releasing an exhausted Ref panics with ErrReleased.
func (p *Pool[T]) Release(r *Ref[T]) {
	if r.refs <= 0 {
		contractf(ErrReleased, "Pool.Release hash=%#x", r.hash)
	}
	r.refs--
	if r.refs > 0 {
		return
	}

	bucket := p.buckets[r.hash]
	for i, e := range bucket {
		if e != r {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		p.size--
		break
	}
	if len(bucket) == 0 {
		delete(p.buckets, r.hash)
	} else {
		p.buckets[r.hash] = bucket
	}
}

// Len returns the number of distinct values held.
func (p *Pool[T]) Len() int { return p.size }
