package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/marisvali/fireworks/fireworks"
)

// ScreenshotName returns the path of screenshot number idx of a session.
// Names sort in the order in which the screenshots were taken.
func ScreenshotName(dir string, session uuid.UUID, idx int64) string {
	return filepath.Join(dir, fmt.Sprintf("fireworks-%s-%03d.png", session, idx))
}

func EncodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	Check(png.Encode(&buf, img))
	return buf.Bytes()
}

func (g *Gui) SaveScreenshot() {
	g.nScreenshots++
	name := ScreenshotName(g.ScreenshotDir, g.sessionId, g.nScreenshots)
	MakeDir(g.ScreenshotDir)
	WriteFile(name, EncodePNG(g.canvas.Screenshot()))
	fireworks.Logger().Info("screenshot saved", "file", name,
		"frame", g.frameIdx)
}
