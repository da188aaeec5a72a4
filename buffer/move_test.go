package buffer

import "testing"

func TestBuffer_MoveGrapheme_BoundsAndLineCrossing(t *testing.T) {
	b := FromString("ab\nc\u00e7d", Options{})

	cases := []struct {
		name string
		from Location
		dir  MoveDir
		want Location
	}{
		{name: "left at doc start", from: Location{0, 0}, dir: DirLeft, want: Location{0, 0}},
		{name: "right", from: Location{0, 0}, dir: DirRight, want: Location{0, 1}},
		{name: "right wraps to next line", from: Location{0, 2}, dir: DirRight, want: Location{1, 0}},
		{name: "left wraps to prev line end", from: Location{1, 0}, dir: DirLeft, want: Location{0, 2}},
		{name: "right at last line end enters trailing line", from: Location{1, 3}, dir: DirRight, want: Location{2, 0}},
		{name: "right at trailing line stays", from: Location{2, 0}, dir: DirRight, want: Location{2, 0}},
		{name: "home", from: Location{1, 2}, dir: DirHome, want: Location{1, 0}},
		{name: "end", from: Location{1, 0}, dir: DirEnd, want: Location{1, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Move(tc.from, Move{Unit: MoveGrapheme, Dir: tc.dir})
			if got != tc.want {
				t.Fatalf("move=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuffer_MoveLine_VerticalClamp(t *testing.T) {
	b := FromString("hello\nw\nworld", Options{})

	if got, want := b.Move(Location{0, 4}, Move{Unit: MoveLine, Dir: DirDown}), (Location{1, 1}); got != want {
		t.Fatalf("down=%v, want %v", got, want)
	}
	if got, want := b.Move(Location{1, 1}, Move{Unit: MoveLine, Dir: DirUp}), (Location{0, 1}); got != want {
		t.Fatalf("up=%v, want %v", got, want)
	}
	if got, want := b.Move(Location{0, 3}, Move{Unit: MoveLine, Dir: DirUp}), (Location{0, 3}); got != want {
		t.Fatalf("up at top=%v, want %v", got, want)
	}
	if got, want := b.Move(Location{2, 3}, Move{Unit: MoveLine, Dir: DirDown}), (Location{3, 0}); got != want {
		t.Fatalf("down at bottom=%v, want %v", got, want)
	}
}

func TestBuffer_MovePage(t *testing.T) {
	b := FromString("a\nb\nc\nd\ne", Options{})
	if got, want := b.Move(Location{0, 0}, Move{Unit: MovePage, Dir: DirDown, PageSize: 3}), (Location{3, 0}); got != want {
		t.Fatalf("page down=%v, want %v", got, want)
	}
	if got, want := b.Move(Location{1, 1}, Move{Unit: MovePage, Dir: DirUp, PageSize: 3}), (Location{0, 1}); got != want {
		t.Fatalf("page up=%v, want %v", got, want)
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	b := FromString("foo  bar\nbaz", Options{})

	cases := []struct {
		name string
		from Location
		dir  MoveDir
		want Location
	}{
		{name: "right over word", from: Location{0, 0}, dir: DirRight, want: Location{0, 3}},
		{name: "right skips spaces", from: Location{0, 3}, dir: DirRight, want: Location{0, 8}},
		{name: "right at line end crosses", from: Location{0, 8}, dir: DirRight, want: Location{1, 0}},
		{name: "left over word", from: Location{0, 8}, dir: DirLeft, want: Location{0, 5}},
		{name: "left skips spaces", from: Location{0, 5}, dir: DirLeft, want: Location{0, 0}},
		{name: "left at line start crosses", from: Location{1, 0}, dir: DirLeft, want: Location{0, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Move(tc.from, Move{Unit: MoveWord, Dir: tc.dir})
			if got != tc.want {
				t.Fatalf("move=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuffer_MoveDoc(t *testing.T) {
	b := FromString("ab\ncde", Options{})
	if got, want := b.Move(Location{1, 1}, Move{Unit: MoveDoc, Dir: DirHome}), (Location{0, 0}); got != want {
		t.Fatalf("doc home=%v, want %v", got, want)
	}
	if got, want := b.Move(Location{0, 1}, Move{Unit: MoveDoc, Dir: DirEnd}), (Location{1, 3}); got != want {
		t.Fatalf("doc end=%v, want %v", got, want)
	}
	if got, want := New(Options{}).Move(Location{4, 4}, Move{Unit: MoveDoc, Dir: DirEnd}), (Location{}); got != want {
		t.Fatalf("doc end on empty=%v, want %v", got, want)
	}
}

func TestBuffer_Move_ClampsInput(t *testing.T) {
	b := FromString("ab", Options{})
	if got, want := b.Move(Location{0, 99}, Move{Unit: MoveGrapheme, Dir: DirLeft}), (Location{0, 1}); got != want {
		t.Fatalf("move=%v, want %v", got, want)
	}
}
