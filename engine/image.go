package engine

import (
	"image"
	"image/color"
)

// Surface is the pixel sink the projectors draw into. Writes outside
// Bounds must be dropped silently.
type Surface interface {
	SetRGBA(x, y int, c color.RGBA)
	Bounds() image.Rectangle
}

// Image is an RGBA framebuffer. It satisfies draw.Image so text and
// standard library compositing can target it directly.
type Image struct {
	Pix    []byte
	width  int
	height int
}

func NewImage(width, height int) *Image {
	return &Image{
		Pix:    make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (img *Image) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	index := (y*img.width + x) * 4
	img.Pix[index] = c.R
	img.Pix[index+1] = c.G
	img.Pix[index+2] = c.B
	img.Pix[index+3] = c.A
}

func (img *Image) Set(x, y int, c color.Color) {
	img.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

func (img *Image) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return color.RGBA{}
	}
	index := (y*img.width + x) * 4
	return color.RGBA{img.Pix[index], img.Pix[index+1], img.Pix[index+2], img.Pix[index+3]}
}

func (img *Image) At(x, y int) color.Color {
	return img.RGBAAt(x, y)
}
