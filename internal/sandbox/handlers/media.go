package handlers

import (
	"bytes"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const placeholderSize = 64

// Media stands in for the image host: every *.png path gets a solid
// placeholder whose color is derived from the path.
func (h *Handler) Media(c *gin.Context) {
	archivo := strings.TrimPrefix(c.Param("archivo"), "/")
	if archivo == "" || !strings.HasSuffix(archivo, ".png") || strings.Contains(archivo, "..") {
		c.Status(http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, placeholder(archivo)); err != nil {
		h.log.Error(c.Request.Context(), "encode placeholder", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func placeholder(key string) image.Image {
	f := fnv.New32a()
	_, _ = f.Write([]byte(key))
	sum := f.Sum32()
	fill := color.RGBA{R: uint8(sum >> 16), G: uint8(sum >> 8), B: uint8(sum), A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	for y := range placeholderSize {
		for x := range placeholderSize {
			img.Set(x, y, fill)
		}
	}
	return img
}
