package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/trees/tree"
)

func TestInOrderStack(t *testing.T) {
	tests := []struct {
		name       string
		create     func() *tree.Node[int, string]
		heightHint int
		post       func(t *testing.T, i *InOrderStack[int, string])
	}{
		{
			name: "empty",
			create: func() *tree.Node[int, string] {
				return nil
			},
			post: func(t *testing.T, i *InOrderStack[int, string]) {
				assert.False(t, i.Next(), "first")
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int, string] {
				return tree.NodeOf(1, "one")
			},
			post: func(t *testing.T, i *InOrderStack[int, string]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.Equal(t, "one", i.Value())
				assert.False(t, i.Next(), "second")
			},
		},
		{
			name:       "height=2",
			create:     newCompleteTree_2Tall,
			heightHint: 3,
			post: func(t *testing.T, i *InOrderStack[int, string]) {
				keys, _ := drain[int, string](i)
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keys)
			},
		},
		{
			name: "dogleg no parent",
			create: func() *tree.Node[int, string] {
				return &tree.Node[int, string]{
					Left: &tree.Node[int, string]{
						Left: &tree.Node[int, string]{
							Key: 1,
						},
						Key: 5,
						Right: &tree.Node[int, string]{
							Left: &tree.Node[int, string]{
								Key: 6,
							},
							Key: 7,
						},
					},
					Key: 8,
					Right: &tree.Node[int, string]{
						Key: 9,
					},
				}
			},
			heightHint: 3,
			post: func(t *testing.T, i *InOrderStack[int, string]) {
				keys, _ := drain[int, string](i)
				assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, keys)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewInOrderStack(tt.create(), tt.heightHint))
		})
	}
}
