// This file is part of s2d.
//
// s2d is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// s2d is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with s2d.  If not, see <https://www.gnu.org/licenses/>.

package software

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RenderText implements the backend.Platform interface. Text is rendered left
// to right regardless of the Direction field of the TextSpec.
func (plt *Platform) RenderText(spec backend.TextSpec) (backend.Surface, error) {
	if err := plt.faults.check(OpRenderText); err != nil {
		return nil, err
	}
	if spec.Text == "" {
		return nil, fmt.Errorf("software: text has zero width")
	}
	if spec.Direction != backend.LeftToRight {
		logger.Logf(logger.Allow, "software", "%s text is rendered left to right", spec.Direction)
	}

	data, err := os.ReadFile(spec.FontPath)
	if err != nil {
		return nil, fmt.Errorf("software: %w", err)
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("software: %s: %w", spec.FontPath, err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(spec.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("software: %s: %w", spec.FontPath, err)
	}
	defer face.Close()

	lines := wrap(face, spec.Text, spec.WrapWidth)

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	var width int
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}
	width = max(width, 1)

	s := newSurface(width, lineHeight*len(lines), plt.SurfacePadding)

	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(spec.Color),
		Face: face,
	}
	for i, l := range lines {
		d.Dot = fixed.Point26_6{
			X: 0,
			Y: fixed.I(i*lineHeight) + metrics.Ascent,
		}
		d.DrawString(l)
	}

	return s, nil
}

// wrap splits text into lines at newline characters and at word boundaries
// when a line is wider than the wrap width. A word that is wider than the wrap
// width is given a line of its own.
func wrap(face font.Face, text string, wrapWidth int) []string {
	var lines []string

	for _, para := range strings.Split(text, "\n") {
		if wrapWidth <= 0 {
			lines = append(lines, para)
			continue
		}

		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if font.MeasureString(face, candidate).Ceil() > wrapWidth {
				lines = append(lines, line)
				line = w
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}

	return lines
}
