package graphia

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/tsawler/graphia/ocr"
)

// imageDiagram builds a one-page document with an embedded raster image
// and a cell referencing an external icon.
func imageDiagram(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	payload := base64.StdEncoding.EncodeToString(buf.Bytes())

	return writeDiagram(t, `<mxfile>
  <diagram name="A">
    <mxGraphModel>
      <root>
        <mxCell id="shot" style="shape=image;image=data:image/png,`+payload+`;imageAspect=0"/>
        <mxCell id="icon" style="shape=image;image=img/lib/aws.svg"/>
        <mxCell id="plain" value="Box" style="rounded=1"/>
      </root>
    </mxGraphModel>
  </diagram>
</mxfile>`)
}

func TestImages(t *testing.T) {
	path := imageDiagram(t)

	images, warnings, err := Open(path).Images()
	if err != nil {
		t.Fatalf("Images() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	if len(images) != 1 {
		t.Fatalf("Images has %d entries, want 1 (external icon excluded)", len(images))
	}
	img := images[0]
	if img.ID != "shot" {
		t.Errorf("image ID = %q, want shot", img.ID)
	}
	if img.Format != "png" {
		t.Errorf("image Format = %q, want png", img.Format)
	}
	if img.Width != 4 || img.Height != 4 {
		t.Errorf("image dimensions = %dx%d, want 4x4", img.Width, img.Height)
	}
}

func TestImages_UndecodableWarns(t *testing.T) {
	path := writeDiagram(t, `<mxfile>
  <diagram name="A">
    <mxGraphModel>
      <root>
        <mxCell id="bad" style="shape=image;image=data:image/png,`+base64.StdEncoding.EncodeToString([]byte("not a png"))+`"/>
      </root>
    </mxGraphModel>
  </diagram>
</mxfile>`)

	images, warnings, err := Open(path).Images()
	if err != nil {
		t.Fatalf("Images() error: %v", err)
	}

	if len(images) != 0 {
		t.Errorf("Images = %v, want none", images)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnImageDecode {
		t.Errorf("warnings = %v, want one image_decode warning", warnings)
	}
}

func TestImageText_RequiresOCRBuild(t *testing.T) {
	if _, err := ocr.New(); err == nil {
		t.Skip("OCR support compiled in")
	}

	path := imageDiagram(t)

	_, _, err := Open(path).ImageText()
	if err == nil {
		t.Fatal("ImageText() succeeded without OCR support")
	}
}

func TestDocument(t *testing.T) {
	path := writeDiagram(t, twoPageDoc)

	doc, _, err := Open(path).Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if doc.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", doc.PageCount())
	}
	if doc.Pages[0].Node("lane") == nil {
		t.Error("document lost the swimlane node")
	}
}

func TestClose_Idempotent(t *testing.T) {
	path := writeDiagram(t, twoPageDoc)

	ext := Open(path)
	if _, err := ext.PageCount(); err != nil {
		t.Fatalf("PageCount() error: %v", err)
	}
	if err := ext.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := ext.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
