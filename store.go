package contour

import "slices"

// pointStore is the storage of a contour: an ordered slice of points plus a
// map from point id to position.
//
// The slice is copy-on-write. Cloning a store is O(1) and marks both the
// original and the clone as shared; whichever side writes first makes a
// private copy. Both sides stay marked after that, so the second writer copies
// too even if it has become the sole owner. We have no reference counts to
// tell the difference.
//
// The index map is rebuilt lazily. Every mutable access marks it dirty,
// whether or not the access ends up reordering anything, and the next lookup
// rebuilds it. Positions obtained from the index must not be kept across a
// call to mut.
type pointStore struct {
	points  []PathPoint
	shared  bool
	indices map[EntityID]int
	dirty   bool
}

func newPointStore(points []PathPoint) pointStore {
	return pointStore{
		points: points,
		dirty:  true,
	}
}

func (s *pointStore) len() int      { return len(s.points) }
func (s *pointStore) isEmpty() bool { return len(s.points) == 0 }

// slice returns the points in storage order. The result must not be modified.
func (s *pointStore) slice() []PathPoint { return s.points }

// snapshot returns the points in storage order. Unlike slice, the result stays
// valid and unchanged across later mutations of s.
func (s *pointStore) snapshot() []PathPoint {
	s.shared = true
	return s.points
}

// mut returns the backing slice for modification. The index is invalidated.
func (s *pointStore) mut() *[]PathPoint {
	s.dirty = true
	s.makeUnique()
	return &s.points
}

func (s *pointStore) makeUnique() {
	if s.shared {
		s.points = slices.Clone(s.points)
		s.shared = false
	}
}

func (s *pointStore) clone() pointStore {
	s.shared = true
	return pointStore{
		points: s.points,
		shared: true,
		dirty:  true,
	}
}

// sameStorage reports whether s and o are views of the same backing array.
func (s *pointStore) sameStorage(o *pointStore) bool {
	if len(s.points) != len(o.points) {
		return false
	}
	return len(s.points) == 0 || &s.points[0] == &o.points[0]
}

func (s *pointStore) rebuildIfNeeded() {
	if !s.dirty {
		return
	}
	s.dirty = false
	if s.indices == nil {
		s.indices = make(map[EntityID]int, len(s.points))
	} else {
		clear(s.indices)
	}
	for i, pt := range s.points {
		s.indices[pt.ID] = i
	}
}

// index returns the position of the point with the given id.
func (s *pointStore) index(id EntityID) (int, bool) {
	s.rebuildIfNeeded()
	idx, ok := s.indices[id]
	return idx, ok
}

func (s *pointStore) get(id EntityID) (PathPoint, bool) {
	idx, ok := s.index(id)
	if !ok {
		return PathPoint{}, false
	}
	return s.points[idx], true
}

// update calls f on the point with the given id, if it exists. f may not
// change the id; it is restored after f returns, so the index stays valid.
func (s *pointStore) update(id EntityID, f func(pt *PathPoint)) bool {
	idx, ok := s.index(id)
	if !ok {
		return false
	}
	s.makeUnique()
	pt := &s.points[idx]
	f(pt)
	pt.ID = id
	return true
}
