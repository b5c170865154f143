package marionette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonHoverAndClick(t *testing.T) {
	b := NewButton("Add", Rect{10, 10, 90, 22})

	b.HandleEvent(PointerMove(20, 20))
	assert.True(t, b.Hovered)
	b.HandleEvent(PointerMove(200, 20))
	assert.False(t, b.Hovered)

	assert.True(t, b.Clicked(PointerDown(50, 25)))
	assert.False(t, b.Clicked(PointerDown(5, 5)))
	assert.False(t, b.Clicked(PointerMove(50, 25)), "motion is not a click")
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{50, 40}, true},
		{"top-left corner", Point{10, 20}, true},
		{"right edge exclusive", Point{110, 40}, false},
		{"bottom edge exclusive", Point{50, 70}, false},
		{"last pixel", Point{109, 69}, true},
		{"outside left", Point{9, 40}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestTextFieldFocus(t *testing.T) {
	f := NewTextField("State Name", Rect{0, 0, 100, 30})

	assert.False(t, f.HandleEvent(TextInput('x')), "unfocused field ignores typing")
	assert.Empty(t, f.Text)

	f.HandleEvent(PointerDown(10, 10))
	require.True(t, f.Focused)

	assert.True(t, f.HandleEvent(TextInput('h')))
	assert.True(t, f.HandleEvent(TextInput('i')))
	assert.Equal(t, "hi", f.Text)

	f.HandleEvent(PointerDown(500, 500))
	assert.False(t, f.Focused, "click outside blurs")
}

func TestTextFieldDeleteRemovesLastRune(t *testing.T) {
	f := NewTextField("", Rect{0, 0, 100, 30})
	f.Focused = true
	f.Text = "héé"

	assert.True(t, f.HandleEvent(KeyDown(KeyBackspace)))
	assert.Equal(t, "hé", f.Text)
	assert.True(t, f.HandleEvent(KeyDown(KeyDelete)))
	assert.Equal(t, "h", f.Text)
	assert.True(t, f.HandleEvent(KeyDown(KeyBackspace)))
	assert.False(t, f.HandleEvent(KeyDown(KeyBackspace)), "empty field has nothing to delete")
	assert.Empty(t, f.Text)
}

func TestTextFieldEnterBlurs(t *testing.T) {
	f := NewTextField("", Rect{0, 0, 100, 30})
	f.Focused = true
	f.HandleEvent(KeyDown(KeyEnter))
	assert.False(t, f.Focused)

	f.Focused = true
	f.HandleEvent(KeyDown(KeyEscape))
	assert.False(t, f.Focused)
}

func TestTextFieldHover(t *testing.T) {
	f := NewTextField("", Rect{0, 0, 100, 30})
	f.HandleEvent(PointerMove(50, 10))
	assert.True(t, f.Hovered)
	f.HandleEvent(PointerMove(150, 10))
	assert.False(t, f.Hovered)
}

func TestProgressBarFill(t *testing.T) {
	tests := []struct {
		name  string
		bar   ProgressBar
		value float32
		want  RectF
	}{
		{
			"horizontal",
			ProgressBar{Pos: Point{10, 20}, Length: 200},
			0.5,
			RectF{10, 20, 100, DefaultProgressThickness},
		},
		{
			"horizontal reversed",
			ProgressBar{Pos: Point{10, 20}, Length: 200, Reversed: true},
			0.25,
			RectF{160, 20, 50, DefaultProgressThickness},
		},
		{
			"vertical",
			ProgressBar{Pos: Point{20, 300}, Length: 100, Thickness: 8, Orientation: Vertical},
			1,
			RectF{20, 300, 8, 100},
		},
		{
			"vertical reversed",
			ProgressBar{Pos: Point{20, 300}, Length: 100, Orientation: Vertical, Reversed: true},
			0.25,
			RectF{20, 375, DefaultProgressThickness, 25},
		},
		{
			"empty",
			ProgressBar{Pos: Point{0, 0}, Length: 100},
			0,
			RectF{0, 0, 0, DefaultProgressThickness},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.bar.Fill(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressBarFillOutOfRange(t *testing.T) {
	bar := ProgressBar{Length: 100}
	for _, v := range []float32{-0.1, 1.01} {
		_, err := bar.Fill(v)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestUpdateHoverClearsAfterHit(t *testing.T) {
	items := []*Button{
		NewButton("a", Rect{0, 0, 50, 50}),
		NewButton("b", Rect{10, 10, 50, 50}),
		NewButton("c", Rect{20, 20, 50, 50}),
	}
	items[2].Hovered = true

	assert.Equal(t, 0, updateHover(items, Point{30, 30}))
	assert.True(t, items[0].Hovered)
	assert.False(t, items[1].Hovered)
	assert.False(t, items[2].Hovered)

	assert.Equal(t, -1, updateHover(items, Point{200, 200}))
	for _, it := range items {
		assert.False(t, it.Hovered)
	}
}
