package filter

import (
	"math"

	"github.com/gogpu/fx/raster"
)

// Channel selects one of the R, G, B, A components.
type Channel uint8

// Color channels in pixel order.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
)

// String returns the channel letter.
func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	case ChannelA:
		return "A"
	}
	return "?"
}

// Displace moves the pixels of src by the displacement map m and returns
// a new premultiplied buffer over src.Rect. For each destination pixel the
// sample position is offset by scale*(v/255 - 0.5) along each axis, with v
// the selected channel of the un-premultiplied map. scaleX and scaleY are
// already in device pixels. The map reads as zero outside its bounds and
// samples falling outside src are transparent black.
func Displace(src, m *raster.Buffer, scaleX, scaleY float64, xc, yc Channel) *raster.Buffer {
	in := src
	if in.Format != raster.FormatRGBAPremul {
		in = raster.Convert(src, raster.FormatRGBAPremul)
	}
	dmap := raster.NewBuffer(src.Rect, raster.FormatRGBA8)
	raster.Copy(dmap, m)

	dst := raster.NewBuffer(src.Rect, raster.FormatRGBAPremul)
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		drow := dst.Row(y)
		mrow := dmap.Row(y)
		for x := dst.Rect.Min.X; x < dst.Rect.Max.X; x++ {
			i := (x - dst.Rect.Min.X) * 4
			mp := mrow[i : i+4 : i+4]
			dx := scaleX * (float64(mp[xc])/255 - 0.5)
			dy := scaleY * (float64(mp[yc])/255 - 0.5)
			sx := x + int(math.Floor(dx+0.5))
			sy := y + int(math.Floor(dy+0.5))
			if sx < in.Rect.Min.X || sx >= in.Rect.Max.X || sy < in.Rect.Min.Y || sy >= in.Rect.Max.Y {
				continue
			}
			s := in.PixOffset(sx, sy)
			copy(drow[i:i+4], in.Pix[s:s+4])
		}
	}
	return dst
}
