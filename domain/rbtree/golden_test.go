package rbtree

import "testing"

var goldenTests = []struct {
	name   string
	insert []int
	remove []int
	want   string
}{
	{
		name:   "one key",
		insert: []int{5},
		want:   "└── 5 (B)\n",
	},
	{
		name:   "two keys",
		insert: []int{5, 7},
		want:   "└── 5 (B)\n    └── 7 (R)\n",
	},
	{
		name:   "three keys",
		insert: []int{5, 7, 3},
		want:   "└── 5 (B)\n    ├── 3 (R)\n    └── 7 (R)\n",
	},
	{
		name:   "insert red uncle recolor",
		insert: []int{1, 3, 4, 2},
		want:   "└── 3 (B)\n    ├── 1 (B)\n    │   └── 2 (R)\n    └── 4 (B)\n",
	},
	{
		name:   "insert left leaf under black root",
		insert: []int{2, 4, 1},
		want:   "└── 2 (B)\n    ├── 1 (R)\n    └── 4 (R)\n",
	},
	{
		name:   "insert recolor below root",
		insert: []int{5, 2, 7, 1},
		want:   "└── 5 (B)\n    ├── 2 (B)\n    │   └── 1 (R)\n    └── 7 (B)\n",
	},
	{
		name:   "insert right zig-zag without uncle",
		insert: []int{3, 1, 7, 9, 8},
		want:   "└── 3 (B)\n    ├── 1 (B)\n    └── 8 (B)\n        ├── 7 (R)\n        └── 9 (R)\n",
	},
	{
		name:   "insert right zig-zag with uncle",
		insert: []int{5, 10, 6, 17, 18, 7, 8, 14},
		want: "└── 8 (B)\n    ├── 6 (R)\n    │   ├── 5 (B)\n    │   └── 7 (B)\n" +
			"    └── 17 (R)\n        ├── 10 (B)\n        │   └── 14 (R)\n        └── 18 (B)\n",
	},
	{
		name:   "insert left zig-zag without uncle",
		insert: []int{5, 3, 7, 1, 2},
		want:   "└── 5 (B)\n    ├── 2 (B)\n    │   ├── 1 (R)\n    │   └── 3 (R)\n    └── 7 (B)\n",
	},
	{
		name:   "insert left zig-zag with uncle",
		insert: []int{16, 18, 19, 2, 3, 8, 11, 15},
		want: "└── 11 (B)\n    ├── 3 (R)\n    │   ├── 2 (B)\n    │   └── 8 (B)\n" +
			"    └── 18 (R)\n        ├── 16 (B)\n        │   └── 15 (R)\n        └── 19 (B)\n",
	},
	{
		name:   "remove the root",
		insert: []int{5},
		remove: []int{5},
		want:   "empty tree",
	},
	{
		name:   "remove red leaf",
		insert: []int{5, 1, 7},
		remove: []int{7},
		want:   "└── 5 (B)\n    └── 1 (R)\n",
	},
	{
		name:   "remove black node with red child",
		insert: []int{5, 1, 7, 3},
		remove: []int{1},
		want:   "└── 5 (B)\n    ├── 3 (B)\n    └── 7 (B)\n",
	},
	{
		name:   "remove black leaf",
		insert: []int{1, 2, 3, 4},
		remove: []int{3, 4},
		want:   "└── 2 (B)\n    └── 1 (R)\n",
	},
	{
		name:   "remove node with red child",
		insert: []int{1, 2, 3, 4},
		remove: []int{3},
		want:   "└── 2 (B)\n    ├── 1 (B)\n    └── 4 (B)\n",
	},
	{
		name:   "remove root with two children",
		insert: []int{1, 2, 3, 4},
		remove: []int{4, 2},
		want:   "└── 3 (B)\n    └── 1 (R)\n",
	},
	{
		name:   "remove left leaf with red sibling",
		insert: []int{3, 2, 5, 7, 8, 9},
		remove: []int{2},
		want:   "└── 7 (B)\n    ├── 3 (B)\n    │   └── 5 (R)\n    └── 8 (B)\n        └── 9 (R)\n",
	},
	{
		name:   "remove right leaf with red sibling",
		insert: []int{8, 6, 7, 1, 4, 3},
		remove: []int{8},
		want:   "└── 4 (B)\n    ├── 1 (B)\n    │   └── 3 (R)\n    └── 7 (B)\n        └── 6 (R)\n",
	},
	{
		name:   "remove propagates up then rotates",
		insert: []int{2, 19, 3, 6, 7, 10, 11, 18, 17, 20},
		remove: []int{6},
		want: "└── 11 (B)\n    ├── 7 (B)\n    │   ├── 3 (B)\n    │   │   └── 2 (R)\n    │   └── 10 (B)\n" +
			"    └── 18 (B)\n        ├── 17 (B)\n        └── 19 (B)\n            └── 20 (R)\n",
	},
	{
		name:   "remove right leaf with red sibling and nephew",
		insert: []int{7, 8, 3, 4, 5, 2},
		remove: []int{8},
		want:   "└── 4 (B)\n    ├── 3 (B)\n    │   └── 2 (R)\n    └── 7 (B)\n        └── 5 (R)\n",
	},
	{
		name:   "remove near nephew red on left sibling",
		insert: []int{5, 1, 7, 2},
		remove: []int{7},
		want:   "└── 2 (B)\n    ├── 1 (B)\n    └── 5 (B)\n",
	},
	{
		name:   "remove near nephew red on right sibling",
		insert: []int{5, 1, 10, 7, 12, 11},
		remove: []int{7},
		want:   "└── 5 (B)\n    ├── 1 (B)\n    └── 11 (R)\n        ├── 10 (B)\n        └── 12 (B)\n",
	},
	{
		name:   "remove far nephew red on right sibling",
		insert: []int{5, 1, 7, 8, 9, 10},
		remove: []int{7},
		want:   "└── 5 (B)\n    ├── 1 (B)\n    └── 9 (R)\n        ├── 8 (B)\n        └── 10 (B)\n",
	},
	{
		name:   "remove far nephew red on left sibling",
		insert: []int{5, 3, 7, 2},
		remove: []int{7},
		want:   "└── 3 (B)\n    ├── 2 (B)\n    └── 5 (B)\n",
	},
}

func TestGoldenRender(t *testing.T) {
	for _, tt := range goldenTests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int]()
			for _, k := range tt.insert {
				if !tree.Insert(k) {
					t.Fatalf("Insert(%d) = false", k)
				}
				if !tree.IsValid() {
					t.Fatalf("invalid after Insert(%d):\n%s", k, tree)
				}
			}
			for _, k := range tt.remove {
				if !tree.Remove(k) {
					t.Fatalf("Remove(%d) = false", k)
				}
				if !tree.IsValid() {
					t.Fatalf("invalid after Remove(%d):\n%s", k, tree)
				}
				if tree.Contains(k) {
					t.Fatalf("key %d still present after Remove", k)
				}
			}

			if got := tree.String(); got != tt.want {
				t.Errorf("render mismatch\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
			if tree.Len() != len(tt.insert)-len(tt.remove) {
				t.Errorf("Len() = %d, want %d", tree.Len(), len(tt.insert)-len(tt.remove))
			}
		})
	}
}
