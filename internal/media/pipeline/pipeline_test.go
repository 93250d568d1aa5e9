package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/media/compress"
	"github.com/goprotex/Disaster-Response/internal/media/pipeline"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, image.White)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}
	return buf.Bytes()
}

func newProcessor() *pipeline.Processor {
	return pipeline.NewProcessor(compress.New(compress.DefaultOptions(), zerolog.Nop()), zerolog.Nop())
}

func asFile(name string, data []byte) pipeline.File {
	return pipeline.File{Name: name, ContentType: "image/jpeg", Size: int64(len(data)), Data: data}
}

func TestProcessPreservesOrder(t *testing.T) {
	files := []pipeline.File{
		asFile("a.jpg", encodeJPEG(t, 8, 8)),
		asFile("b.jpg", []byte("not a real jpeg body")),
		asFile("c.jpg", encodeJPEG(t, 8, 8)),
	}

	got, err := newProcessor().Process(context.Background(), files)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Process returned %d results, want 3", len(got))
	}
	for i, p := range got {
		if p.File.Name != files[i].Name {
			t.Errorf("results[%d] = %q, want %q", i, p.File.Name, files[i].Name)
		}
	}

	// The malformed middle file yields an empty metadata record, not an error.
	if got[1].Exif.HasLocation() || got[1].Exif.Camera != "" || got[1].Exif.CaptureTime != "" {
		t.Errorf("malformed file produced non-empty metadata: %+v", got[1].Exif)
	}
	if !bytes.Equal(got[1].File.Data, files[1].Data) {
		t.Error("malformed file bytes were altered")
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	files := []pipeline.File{
		asFile("a.jpg", encodeJPEG(t, 8, 8)),
		{Name: "notes.txt", ContentType: "text/plain", Size: 5, Data: []byte("hello")},
	}

	got, err := newProcessor().Process(context.Background(), files)
	if !errors.Is(err, pipeline.ErrNotImage) {
		t.Fatalf("Process error = %v, want ErrNotImage", err)
	}
	if got != nil {
		t.Fatalf("Process returned partial results %v on failure", got)
	}
}

func TestProcessEmptyBatch(t *testing.T) {
	got, err := newProcessor().Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("Process(nil): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Process(nil) = %v, want empty", got)
	}
}

func TestProcessShrinksOversizedPhoto(t *testing.T) {
	data := encodeJPEG(t, 2400, 1200)
	files := []pipeline.File{asFile("wide.jpg", data)}

	got, err := newProcessor().Process(context.Background(), files)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	out := got[0].File
	if out.Size != int64(len(out.Data)) {
		t.Errorf("Size = %d, len(Data) = %d", out.Size, len(out.Data))
	}
	if len(out.Data) > len(data) {
		t.Errorf("stored photo grew from %d to %d bytes", len(data), len(out.Data))
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("decode stored photo: %v", err)
	}
	if cfg.Width > 1920 || cfg.Height > 1920 {
		t.Errorf("stored photo is %dx%d, want longest edge <= 1920", cfg.Width, cfg.Height)
	}
}
