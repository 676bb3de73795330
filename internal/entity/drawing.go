package entity

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
)

const (
	MaxLineWidth   = 200
	MaxColorLength = 32
	MaxCoordinate  = 1 << 16
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DrawData is one line segment. The ordered sequence since the last clear rebuilds the canvas.
type DrawData struct {
	From      Point   `json:"from"`
	To        Point   `json:"to"`
	Color     string  `json:"color"`
	LineWidth float64 `json:"lineWidth"`
}

func (that Point) valid() bool {
	for _, v := range [2]float64{that.X, that.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxCoordinate {
			return false
		}
	}

	return true
}

func (that DrawData) Validate() error {
	if !that.From.valid() || !that.To.valid() {
		return fmt.Errorf("%w: coordinates out of range", apperror.ErrInvalidStroke)
	}

	if math.IsNaN(that.LineWidth) || that.LineWidth <= 0 || that.LineWidth > MaxLineWidth {
		return fmt.Errorf("%w: line width %v", apperror.ErrInvalidStroke, that.LineWidth)
	}

	if that.Color == "" || utf8.RuneCountInString(that.Color) > MaxColorLength {
		return fmt.Errorf("%w: color %q", apperror.ErrInvalidStroke, that.Color)
	}

	return nil
}
