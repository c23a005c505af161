package logo

import "image"

// WhiteThreshold R、G、B 都严格大于该值的像素视为白色背景
const WhiteThreshold = 240

// ColorKey 把接近白色的像素原地改为 (255,255,255,0)，返回被改写的像素数。
// 判断只看 RGB，其余像素（包括其 alpha）保持不变。
func ColorKey(img *image.NRGBA, threshold uint8) int {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	keyed := 0

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			if row[i] > threshold && row[i+1] > threshold && row[i+2] > threshold {
				row[i], row[i+1], row[i+2], row[i+3] = 255, 255, 255, 0
				keyed++
			}
		}
	}
	return keyed
}
