package avl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nb is a node key with its balance, listed in pre-order.
type nb struct {
	key     int
	balance int8
}

func shape(tr *Tree[int, string]) []nb {
	var out []nb
	tr.PreOrder(func(k int, _ string) bool {
		out = append(out, nb{k, tr.bst.Find(k).Balance})
		return true
	})
	return out
}

func newTree(t *testing.T, keys ...int) *Tree[int, string] {
	t.Helper()
	tr := &Tree[int, string]{}
	for _, k := range keys {
		require.True(t, tr.Insert(k, fmt.Sprint(k)), "insert %d", k)
		require.NoError(t, tr.Check(), "after insert %d", k)
	}
	return tr
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want []nb
	}{
		{
			name: "empty",
		},
		{
			name: "root",
			keys: []int{1},
			want: []nb{{1, 0}},
		},
		{
			name: "lean left",
			keys: []int{2, 1},
			want: []nb{{2, -1}, {1, 0}},
		},
		{
			name: "fill in the other side",
			keys: []int{2, 1, 3},
			want: []nb{{2, 0}, {1, 0}, {3, 0}},
		},
		{
			name: "left-left",
			keys: []int{3, 2, 1},
			want: []nb{{2, 0}, {1, 0}, {3, 0}},
		},
		{
			name: "left-right",
			keys: []int{3, 1, 2},
			want: []nb{{2, 0}, {1, 0}, {3, 0}},
		},
		{
			name: "right-right",
			keys: []int{1, 2, 3},
			want: []nb{{2, 0}, {1, 0}, {3, 0}},
		},
		{
			name: "right-left",
			keys: []int{1, 3, 2},
			want: []nb{{2, 0}, {1, 0}, {3, 0}},
		},
		{
			name: "propagate without rotating",
			keys: []int{50, 30, 70, 20},
			want: []nb{{50, -1}, {30, -1}, {20, 0}, {70, 0}},
		},
		{
			name: "left-right, child leaning left",
			keys: []int{50, 30, 70, 20, 40, 35},
			want: []nb{{40, 0}, {30, 0}, {20, 0}, {35, 0}, {50, 1}, {70, 0}},
		},
		{
			name: "left-right, child leaning right",
			keys: []int{50, 30, 70, 20, 40, 45},
			want: []nb{{40, 0}, {30, -1}, {20, 0}, {50, 0}, {45, 0}, {70, 0}},
		},
		{
			name: "right-left, child leaning right",
			keys: []int{50, 30, 70, 60, 80, 65},
			want: []nb{{60, 0}, {50, -1}, {30, 0}, {70, 0}, {65, 0}, {80, 0}},
		},
		{
			name: "right-left, child leaning left",
			keys: []int{50, 30, 70, 60, 80, 55},
			want: []nb{{60, 0}, {50, 0}, {30, 0}, {55, 0}, {70, 1}, {80, 0}},
		},
		{
			name: "rotation below the root",
			keys: []int{50, 30, 70, 80, 90},
			want: []nb{{50, 1}, {30, 0}, {80, 0}, {70, 0}, {90, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTree(t, tt.keys...)
			assert.Equal(t, tt.want, shape(tr))
			assert.Equal(t, len(tt.keys), tr.Len())
		})
	}
}

func TestInsert_Ascending(t *testing.T) {
	tr := newTree(t, 1, 2, 3, 4, 5, 6, 7)

	actual, ideal := tr.Height()
	assert.Equal(t, 3, actual)
	assert.Equal(t, 3, ideal)
	assert.True(t, tr.EqualPaths())
	assert.Equal(t, ""+
		"4\n"+
		"├─L─2\n"+
		"│   ├─L─1\n"+
		"│   └─R─3\n"+
		"└─R─6\n"+
		"    ├─L─5\n"+
		"    └─R─7\n", tr.String())

	for _, s := range shape(tr) {
		assert.Equal(t, int8(0), s.balance, "key %d", s.key)
	}
}

func TestInsert_Duplicate(t *testing.T) {
	tr := newTree(t, 4, 2, 6, 1)
	before := shape(tr)

	assert.False(t, tr.Insert(1, "v2"))
	assert.Equal(t, before, shape(tr))
	assert.Equal(t, 4, tr.Len())

	v, ok := tr.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
	require.NoError(t, tr.Check())
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		keys   []int
		remove []int
		want   []nb
	}{
		{
			name:   "empty",
			remove: []int{1},
		},
		{
			name:   "absent",
			keys:   []int{2, 1, 3},
			remove: []int{4},
			want:   []nb{{2, 0}, {1, 0}, {3, 0}},
		},
		{
			name:   "only root",
			keys:   []int{1},
			remove: []int{1},
		},
		{
			name:   "leaf, parent becomes lopsided",
			keys:   []int{2, 1, 3},
			remove: []int{1},
			want:   []nb{{2, 1}, {3, 0}},
		},
		{
			name:   "root with predecessor as left child",
			keys:   []int{2, 1, 3},
			remove: []int{2},
			want:   []nb{{1, 1}, {3, 0}},
		},
		{
			name:   "root with predecessor deeper",
			keys:   []int{4, 2, 6, 1, 3, 5, 7},
			remove: []int{4},
			want:   []nb{{3, 0}, {2, -1}, {1, 0}, {6, 0}, {5, 0}, {7, 0}},
		},
		{
			name:   "shrink propagates",
			keys:   []int{50, 30, 70, 20, 40, 80},
			remove: []int{80},
			want:   []nb{{50, -1}, {30, 0}, {20, 0}, {40, 0}, {70, 0}},
		},
		{
			name:   "left-left, heavy child balanced, stops",
			keys:   []int{50, 30, 70, 20, 40, 80},
			remove: []int{80, 70},
			want:   []nb{{30, 1}, {20, 0}, {50, -1}, {40, 0}},
		},
		{
			name:   "left-left, heavy child leaning",
			keys:   []int{50, 30, 70, 20},
			remove: []int{70},
			want:   []nb{{30, 0}, {20, 0}, {50, 0}},
		},
		{
			name:   "left-right",
			keys:   []int{50, 30, 70, 40},
			remove: []int{70},
			want:   []nb{{40, 0}, {30, 0}, {50, 0}},
		},
		{
			name:   "right-right, heavy child balanced, stops",
			keys:   []int{2, 1, 4, 3, 5},
			remove: []int{1},
			want:   []nb{{4, -1}, {2, 1}, {3, 0}, {5, 0}},
		},
		{
			name:   "right-right, heavy child leaning",
			keys:   []int{2, 1, 3, 4},
			remove: []int{1},
			want:   []nb{{3, 0}, {2, 0}, {4, 0}},
		},
		{
			name:   "right-left",
			keys:   []int{2, 1, 4, 3},
			remove: []int{1},
			want:   []nb{{3, 0}, {2, 0}, {4, 0}},
		},
		{
			name:   "everything",
			keys:   []int{4, 2, 6, 1, 3, 5, 7},
			remove: []int{4, 2, 6, 1, 3, 5, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTree(t, tt.keys...)

			for _, k := range tt.remove {
				tr.Remove(k)
				require.NoError(t, tr.Check(), "after remove %d", k)
				assert.False(t, tr.Contains(k))
			}

			assert.Equal(t, tt.want, shape(tr))
			assert.Equal(t, len(tt.want), tr.Len())
		})
	}
}

func TestRemove_Result(t *testing.T) {
	tr := newTree(t, 1, 2)

	assert.False(t, tr.Remove(3))
	assert.True(t, tr.Remove(1))
	assert.False(t, tr.Remove(1))
	assert.True(t, tr.Remove(2))
	assert.Nil(t, tr.bst.Root())
}

func TestRemove_FiveKeys(t *testing.T) {
	tr := newTree(t, 1, 2, 3, 4, 5)
	require.Equal(t, []nb{{2, 1}, {1, 0}, {4, 0}, {3, 0}, {5, 0}}, shape(tr))

	tr.Remove(1)
	require.NoError(t, tr.Check())

	var keys []int
	tr.InOrder(func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})
	assert.Equal(t, []int{2, 3, 4, 5}, keys)
	assert.Equal(t, []nb{{4, -1}, {2, 1}, {3, 0}, {5, 0}}, shape(tr))
}

func TestRemove_KeepsValues(t *testing.T) {
	tr := newTree(t, 4, 2, 6, 1, 3, 5, 7)

	tr.Remove(4)
	tr.Remove(2)

	for _, k := range []int{1, 3, 5, 6, 7} {
		v, ok := tr.Get(k)
		assert.True(t, ok, "key %d", k)
		assert.Equal(t, fmt.Sprint(k), v, "key %d", k)
	}
}

func TestLookups(t *testing.T) {
	tr := newTree(t, 10, 5, 15)

	k, ok := tr.Less(10)
	assert.True(t, ok)
	assert.Equal(t, 5, k)

	k, v, ok := tr.Min()
	assert.True(t, ok)
	assert.Equal(t, 5, k)
	assert.Equal(t, "5", v)

	k, v, ok = tr.Max()
	assert.True(t, ok)
	assert.Equal(t, 15, k)
	assert.Equal(t, "15", v)

	_, ok = tr.Get(11)
	assert.False(t, ok)

	var rev []int
	i := tr.InOrderReverseIterator()
	for i.Next() {
		rev = append(rev, i.Item())
	}
	assert.Equal(t, []int{15, 10, 5}, rev)

	var fwd []int
	j := tr.InOrderIterator()
	for j.Next() {
		fwd = append(fwd, j.Item())
	}
	assert.Equal(t, []int{5, 10, 15}, fwd)
}
