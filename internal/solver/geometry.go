package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	// "perimeter of a rectangle 5cm by 3cm"
	perimeterRectRe = regexp.MustCompile(`(?i)perimeter.*?(\d+(?:\.\d+)?)\s*(?:cm|m|mm|km)?\s*by\s*(\d+(?:\.\d+)?)`)
	// "perimeter of rectangle with length 8 and width 5", either order
	perimeterRectLWRe = regexp.MustCompile(`(?i)perimeter.*?(?:length|l)\s*(?:of\s*)?(\d+(?:\.\d+)?).*?(?:width|breadth|w)\s*(?:of\s*)?(\d+(?:\.\d+)?)` +
		`|perimeter.*?(?:width|breadth|w)\s*(?:of\s*)?(\d+(?:\.\d+)?).*?(?:length|l)\s*(?:of\s*)?(\d+(?:\.\d+)?)`)
	// "perimeter of a square with side 4cm"
	perimeterSquareRe = regexp.MustCompile(`(?i)perimeter.*?square.*?side\s*(?:of\s*)?(\d+(?:\.\d+)?)`)
	// "area of a rectangle 5cm by 3cm"
	areaRectRe = regexp.MustCompile(`(?i)area.*?(\d+(?:\.\d+)?)\s*(?:cm|m|mm|km)?\s*by\s*(\d+(?:\.\d+)?)`)
	// "area of rectangle with length 8 cm and width 5 cm", either order
	areaRectLWRe = regexp.MustCompile(`(?i)area.*?(?:length|l)\s*(?:of\s*)?(\d+(?:\.\d+)?).*?(?:width|breadth|w)\s*(?:of\s*)?(\d+(?:\.\d+)?)` +
		`|area.*?(?:width|breadth|w)\s*(?:of\s*)?(\d+(?:\.\d+)?).*?(?:length|l)\s*(?:of\s*)?(\d+(?:\.\d+)?)`)
	// "area of a square with side 4"
	areaSquareRe = regexp.MustCompile(`(?i)area.*?square.*?side\s*(?:of\s*)?(\d+(?:\.\d+)?)`)
	// "area of triangle base 6 height 4"
	areaTriangleRe = regexp.MustCompile(`(?i)area.*?triangle.*?base\s*(\d+(?:\.\d+)?).*?height\s*(\d+(?:\.\d+)?)` +
		`|area.*?(\d+(?:\.\d+)?).*?base.*?(\d+(?:\.\d+)?).*?height`)
)

// shapeOrder fixes the lookup order so "square" wins over "rectangle"
// when both words appear.
var shapeOrder = []string{"square", "rectangle", "triangle", "circle", "pentagon", "hexagon"}

var shapeFacts = map[string]string{
	"square":    "A square has 4 equal sides and 4 right angles.",
	"rectangle": "A rectangle has 4 sides and 4 right angles. Opposite sides are equal.",
	"triangle":  "A triangle has 3 sides and 3 angles. The angles add up to 180°.",
	"circle":    "A circle has no corners. Every point on its edge is the same distance from the centre.",
	"pentagon":  "A pentagon has 5 sides and 5 angles.",
	"hexagon":   "A hexagon has 6 sides and 6 angles.",
}

var shapeSides = map[string]int{
	"square": 4, "rectangle": 4, "triangle": 3, "pentagon": 5, "hexagon": 6, "circle": 0,
}

// GeometrySolver handles shape facts, perimeter and area.
type GeometrySolver struct{}

func (s *GeometrySolver) Name() string { return "geometry" }

func (s *GeometrySolver) Attempt(text string) *TopicResult {
	q := strings.TrimSpace(text)

	if m := perimeterRectRe.FindStringSubmatch(q); m != nil {
		return rectPerimeter(mustFloat(m[1]), mustFloat(m[2]))
	}
	if m := perimeterRectLWRe.FindStringSubmatch(q); m != nil {
		l := mustFloat(firstText(m[1], m[4]))
		w := mustFloat(firstText(m[2], m[3]))
		return rectPerimeter(l, w)
	}
	if m := perimeterSquareRe.FindStringSubmatch(q); m != nil {
		side := mustFloat(m[1])
		p := 4 * side
		return &TopicResult{
			Topic:  topicgraph.Geometry,
			Answer: fmt.Sprintf("%s cm", fmtGeo(p)),
			Steps: []Step{
				{Title: "Square perimeter", Text: "A square has 4 equal sides. Perimeter = 4 × side."},
				{Title: "Substitute", Text: fmt.Sprintf("4 × %s = %s.", fmtGeo(side), fmtGeo(p))},
				{Title: "Answer", Text: fmt.Sprintf("Perimeter = %s cm.", fmtGeo(p))},
			},
			SmallerExample: "Smaller example: square side 3cm → P = 4×3 = 12cm",
		}
	}
	if m := areaRectRe.FindStringSubmatch(q); m != nil {
		return rectArea(mustFloat(m[1]), mustFloat(m[2]))
	}
	if m := areaRectLWRe.FindStringSubmatch(q); m != nil {
		l := mustFloat(firstText(m[1], m[4]))
		w := mustFloat(firstText(m[2], m[3]))
		return rectArea(l, w)
	}
	if m := areaSquareRe.FindStringSubmatch(q); m != nil {
		side := mustFloat(m[1])
		a := side * side
		return &TopicResult{
			Topic:  topicgraph.Geometry,
			Answer: fmt.Sprintf("%s cm²", fmtGeo(a)),
			Steps: []Step{
				{Title: "Square area", Text: "Area of square = side × side."},
				{Title: "Substitute", Text: fmt.Sprintf("%s × %s = %s.", fmtGeo(side), fmtGeo(side), fmtGeo(a))},
				{Title: "Answer", Text: fmt.Sprintf("Area = %s cm².", fmtGeo(a))},
			},
			SmallerExample: "Smaller example: square side 4cm → Area = 16cm²",
		}
	}
	if m := areaTriangleRe.FindStringSubmatch(q); m != nil {
		b := mustFloat(firstText(m[1], m[3]))
		h := mustFloat(firstText(m[2], m[4]))
		a := 0.5 * b * h
		return &TopicResult{
			Topic:  topicgraph.Geometry,
			Answer: fmt.Sprintf("%s cm²", fmtGeo(a)),
			Steps: []Step{
				{Title: "Triangle area formula", Text: "Area of triangle = ½ × base × height."},
				{Title: "Substitute", Text: fmt.Sprintf("½ × %s × %s = %s.", fmtGeo(b), fmtGeo(h), fmtGeo(a))},
				{Title: "Answer", Text: fmt.Sprintf("Area = %s cm².", fmtGeo(a))},
			},
			SmallerExample: "Smaller example: base 4cm, height 3cm → ½×4×3 = 6cm²",
		}
	}

	ql := strings.ToLower(q)
	for _, shape := range shapeOrder {
		if !strings.Contains(ql, shape) {
			continue
		}
		fact := shapeFacts[shape]
		sidesText := fmt.Sprintf("A %s has %d side(s).", shape, shapeSides[shape])
		if shapeSides[shape] == 0 {
			sidesText = "A circle has no sides — it is a curved shape."
		}
		return &TopicResult{
			Topic:  topicgraph.Geometry,
			Answer: fact,
			Steps: []Step{
				{Title: fmt.Sprintf("What is a %s?", shape), Text: fact},
				{Title: "Sides", Text: sidesText},
				{Title: "Look around you", Text: fmt.Sprintf("Can you find a %s shape near you?", shape)},
			},
			SmallerExample: "Example: a book is shaped like a rectangle.",
		}
	}

	return nil
}

func rectPerimeter(l, w float64) *TopicResult {
	p := 2 * (l + w)
	return &TopicResult{
		Topic:  topicgraph.Geometry,
		Answer: fmt.Sprintf("%s cm", fmtGeo(p)),
		Steps: []Step{
			{Title: "Perimeter formula", Text: "Perimeter of rectangle = 2 × (length + width)."},
			{Title: "Substitute", Text: fmt.Sprintf("2 × (%s + %s) = 2 × %s.", fmtGeo(l), fmtGeo(w), fmtGeo(l+w))},
			{Title: "Answer", Text: fmt.Sprintf("Perimeter = %s cm.", fmtGeo(p))},
		},
		SmallerExample: "Smaller example: rectangle 3cm by 2cm → P = 2×(3+2) = 10cm",
	}
}

func rectArea(l, w float64) *TopicResult {
	a := l * w
	return &TopicResult{
		Topic:  topicgraph.Geometry,
		Answer: fmt.Sprintf("%s cm²", fmtGeo(a)),
		Steps: []Step{
			{Title: "Area formula", Text: "Area of rectangle = length × width."},
			{Title: "Substitute", Text: fmt.Sprintf("%s × %s = %s.", fmtGeo(l), fmtGeo(w), fmtGeo(a))},
			{Title: "Answer", Text: fmt.Sprintf("Area = %s cm².", fmtGeo(a))},
		},
		SmallerExample: "Smaller example: 3cm × 2cm = 6cm²",
	}
}

// fmtGeo renders a measurement, collapsing whole values.
func fmtGeo(v float64) string { return formatNumber(v, 4) }
