package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so that four curves approximate an ellipse.
const kappa = 0.5522847498

// fillPath rasterises the path produced by build and composites src over
// dst with anti-aliased edges.
func fillPath(dst draw.Image, src color.Color, build func(z *vector.Rasterizer)) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	build(z)
	z.Draw(dst, b, image.NewUniform(src), image.Point{})
}

// solidCoverage is the minimum anti-aliased coverage that counts as inside
// a hard-edged shape.
const solidCoverage = 0x80

// fillSolid rasterises the path produced by build into a coverage mask,
// thresholds it, and paints src through the hard mask. Every touched pixel
// becomes exactly src when src is opaque.
func fillSolid(dst draw.Image, src color.Color, build func(z *vector.Rasterizer)) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	build(z)

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for i, a := range mask.Pix {
		if a >= solidCoverage {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
	draw.DrawMask(dst, b, image.NewUniform(src), image.Point{}, mask, image.Point{}, draw.Over)
}

// filler is fillPath or fillSolid.
type filler func(dst draw.Image, src color.Color, build func(z *vector.Rasterizer))

// ellipsePath traces the ellipse inscribed in the inclusive box (x1,y1)-(x2,y2).
func ellipsePath(o image.Point, x1, y1, x2, y2 int) func(z *vector.Rasterizer) {
	cx := float32(x1+x2+1)/2 - float32(o.X)
	cy := float32(y1+y2+1)/2 - float32(o.Y)
	rx := float32(x2-x1+1) / 2
	ry := float32(y2-y1+1) / 2
	kx, ky := rx*kappa, ry*kappa

	return func(z *vector.Rasterizer) {
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
		z.ClosePath()
	}
}

// polygonPath traces the closed polygon through pts.
func polygonPath(o image.Point, pts []image.Point) func(z *vector.Rasterizer) {
	return func(z *vector.Rasterizer) {
		z.MoveTo(float32(pts[0].X-o.X), float32(pts[0].Y-o.Y))
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X-o.X), float32(p.Y-o.Y))
		}
		z.ClosePath()
	}
}

// fillEllipse fills the ellipse inscribed in the inclusive box (x1,y1)-(x2,y2).
func fillEllipse(fill filler, dst draw.Image, x1, y1, x2, y2 int, c color.Color) {
	fill(dst, c, ellipsePath(dst.Bounds().Min, x1, y1, x2, y2))
}

// fillRect fills the inclusive box (x1,y1)-(x2,y2).
func fillRect(dst draw.Image, x1, y1, x2, y2 int, c color.Color) {
	r := image.Rect(x1, y1, x2+1, y2+1).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// fillPolygon fills the closed polygon through pts using the non-zero rule.
func fillPolygon(fill filler, dst draw.Image, pts []image.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	fill(dst, c, polygonPath(dst.Bounds().Min, pts))
}

// strokeLine draws a segment from p0 to p1 with the given width.
func strokeLine(dst draw.Image, p0, p1 image.Point, width float64, c color.Color) {
	dx, dy := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		half := int(width / 2)
		fillRect(dst, p0.X-half, p0.Y-half, p0.X+half, p0.Y+half, c)
		return
	}
	// unit normal scaled to half the width
	nx, ny := -dy/length*width/2, dx/length*width/2
	o := dst.Bounds().Min
	x0, y0 := float64(p0.X-o.X), float64(p0.Y-o.Y)
	x1, y1 := float64(p1.X-o.X), float64(p1.Y-o.Y)

	fillPath(dst, c, func(z *vector.Rasterizer) {
		z.MoveTo(float32(x0+nx), float32(y0+ny))
		z.LineTo(float32(x1+nx), float32(y1+ny))
		z.LineTo(float32(x1-nx), float32(y1-ny))
		z.LineTo(float32(x0-nx), float32(y0-ny))
		z.ClosePath()
	})
}

// flatten drops transparency the way an RGBA to RGB conversion does:
// colour channels are kept and alpha is forced to opaque.
func flatten(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px.A == 0xff {
				continue
			}
			n := color.NRGBAModel.Convert(px).(color.NRGBA)
			img.SetRGBA(x, y, color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff})
		}
	}
}

// NewCanvas returns an opaque canvas filled with c.
func NewCanvas(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
