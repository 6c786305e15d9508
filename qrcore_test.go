package qrcore

import (
	"errors"
	"image"
	"testing"
)

// renderGrid rasterizes a Grid into an RGBA pixel buffer at moduleSize
// pixels per module, with a quiet-zone margin of margin modules on every
// side, dark modules black and light modules white.
func renderGrid(g *Grid, moduleSize, margin int) (pixels []byte, w, h int) {
	dim := g.Dimension + 2*margin
	w = dim * moduleSize
	h = dim * moduleSize
	pixels = make([]byte, w*h*4)
	for py := 0; py < h; py++ {
		my := py/moduleSize - margin
		for px := 0; px < w; px++ {
			mx := px/moduleSize - margin
			dark := false
			if mx >= 0 && mx < g.Dimension && my >= 0 && my < g.Dimension {
				dark = g.Get(mx, my)
			}
			v := byte(0xFF)
			if dark {
				v = 0x00
			}
			offset := (py*w + px) * 4
			pixels[offset] = v
			pixels[offset+1] = v
			pixels[offset+2] = v
			pixels[offset+3] = 0xFF
		}
	}
	return pixels, w, h
}

func renderGridImage(g *Grid, moduleSize, margin int) image.Image {
	pixels, w, h := renderGrid(g, moduleSize, margin)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	return img
}

// corruptModules inverts every pixel in a size x size block of modules
// starting at module (mx, my), given the same moduleSize and margin used
// to render the buffer. Pixel values are either 0x00 or 0xFF, so
// inverting each channel toggles dark/light without needing to know
// which color a given module started as.
func corruptModules(pixels []byte, w, moduleSize, margin, mx, my, size int) {
	x0 := (margin + mx) * moduleSize
	y0 := (margin + my) * moduleSize
	for dy := 0; dy < size*moduleSize; dy++ {
		py := y0 + dy
		for dx := 0; dx < size*moduleSize; dx++ {
			px := x0 + dx
			offset := (py*w + px) * 4
			pixels[offset] = 0xFF - pixels[offset]
			pixels[offset+1] = 0xFF - pixels[offset+1]
			pixels[offset+2] = 0xFF - pixels[offset+2]
		}
	}
}

func testRoundTrip(t *testing.T, content string, mode Mode, ec ErrorCorrectionLevel) *DecodeResult {
	t.Helper()

	grid, err := Encode(content, mode, ec, 0)
	if err != nil {
		t.Fatalf("Encode(%q) failed: %v", content, err)
	}
	pixels, w, h := renderGrid(grid, 4, 4)

	result, err := Decode(pixels, w, h, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Text != content {
		t.Errorf("round-trip mismatch: got %q, want %q", result.Text, content)
	}
	if result.ECLevel != ec {
		t.Errorf("EC level mismatch: got %v, want %v", result.ECLevel, ec)
	}
	return result
}

func TestRoundTripNumeric(t *testing.T) {
	testRoundTrip(t, "1234567890", ModeNumeric, ECLevelM)
}

func TestRoundTripAlphanumeric(t *testing.T) {
	testRoundTrip(t, "HELLO WORLD", ModeAlphanumeric, ECLevelL)
}

func TestRoundTripByte(t *testing.T) {
	testRoundTrip(t, "Hello, World! This is a test.", ModeByte, ECLevelQ)
}

func TestRoundTripAllECLevels(t *testing.T) {
	content := "TESTING ALL EC LEVELS"
	levels := []ErrorCorrectionLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH}
	for _, ec := range levels {
		t.Run(ec.String(), func(t *testing.T) {
			testRoundTrip(t, content, ModeAlphanumeric, ec)
		})
	}
}

func TestRoundTripCleanReadGradesPerfect(t *testing.T) {
	result := testRoundTrip(t, "GRADED READ", ModeAlphanumeric, ECLevelQ)
	if result.FunctionalGrade != 4 {
		t.Errorf("FunctionalGrade = %d, want 4 for a clean synthetic render", result.FunctionalGrade)
	}
	if result.ErrorGrade != 4 {
		t.Errorf("ErrorGrade = %d, want 4 for zero corrected errors", result.ErrorGrade)
	}
	if result.ErrorsCorrected != 0 {
		t.Errorf("ErrorsCorrected = %d, want 0", result.ErrorsCorrected)
	}
}

func TestRoundTripVersion7PlusReadsVersionInfo(t *testing.T) {
	// Force a version large enough to carry redundant version-info blocks.
	long := make([]byte, 200)
	for i := range long {
		long[i] = byte('A' + i%26)
	}
	grid, err := Encode(string(long), ModeAlphanumeric, ECLevelL, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if grid.Version < 7 {
		t.Fatalf("expected version >= 7 for this payload, got %d", grid.Version)
	}
	pixels, w, h := renderGrid(grid, 3, 4)
	result, err := Decode(pixels, w, h, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Text != string(long) {
		t.Errorf("round-trip mismatch on version %d symbol", grid.Version)
	}
	if result.VersionInfoGrades[0] == -1 || result.VersionInfoGrades[1] == -1 {
		t.Errorf("VersionInfoGrades = %v, want applicable grades for version %d", result.VersionInfoGrades, grid.Version)
	}
}

func TestDecodeImage(t *testing.T) {
	grid, err := Encode("IMAGE ADAPTER", ModeAlphanumeric, ECLevelM, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	img := renderGridImage(grid, 4, 4)
	result, err := DecodeImage(img, nil)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if result.Text != "IMAGE ADAPTER" {
		t.Errorf("got %q, want %q", result.Text, "IMAGE ADAPTER")
	}
}

func TestDecodeImageDownscalesOversizedInput(t *testing.T) {
	grid, err := Encode("DOWNSCALE ME", ModeAlphanumeric, ECLevelH, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	// moduleSize large enough that the rendered image exceeds
	// maxDecodeImageDim on its longer side.
	img := renderGridImage(grid, 80, 4)
	bounds := img.Bounds()
	if bounds.Dx() <= maxDecodeImageDim {
		t.Fatalf("test setup: image too small to exercise downscaling (%d <= %d)", bounds.Dx(), maxDecodeImageDim)
	}
	result, err := DecodeImage(img, nil)
	if err != nil {
		t.Fatalf("DecodeImage failed on oversized input: %v", err)
	}
	if result.Text != "DOWNSCALE ME" {
		t.Errorf("got %q, want %q", result.Text, "DOWNSCALE ME")
	}
}

func TestDecodeRegionCropsToSymbol(t *testing.T) {
	grid, err := Encode("REGION CROP", ModeAlphanumeric, ECLevelM, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	pixels, w, h := renderGrid(grid, 4, 4)

	// Pad the buffer with unrelated white space so the symbol only occupies
	// a sub-region, then decode just that sub-region.
	padded := make([]byte, (w+40)*(h+40)*4)
	for i := range padded {
		padded[i] = 0xFF
	}
	pw := w + 40
	for y := 0; y < h; y++ {
		srcOff := y * w * 4
		dstOff := ((y + 20) * pw + 20) * 4
		copy(padded[dstOff:dstOff+w*4], pixels[srcOff:srcOff+w*4])
	}

	result, err := DecodeRegion(padded, pw, h+40, 20, 20+w, 20, 20+h, 0, nil)
	if err != nil {
		t.Fatalf("DecodeRegion failed: %v", err)
	}
	if result.Text != "REGION CROP" {
		t.Errorf("got %q, want %q", result.Text, "REGION CROP")
	}
}

func TestDecodeRegionRejectsInvalidBounds(t *testing.T) {
	pixels := make([]byte, 100*100*4)
	_, err := DecodeRegion(pixels, 100, 100, 50, 10, 0, 50, 0, nil)
	if err == nil {
		t.Fatal("expected error for x1 < x0")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestDecodeNoSymbolReturnsFinderNotFound(t *testing.T) {
	pixels := make([]byte, 100*100*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i] = 0xFF
		pixels[i+1] = 0xFF
		pixels[i+2] = 0xFF
		pixels[i+3] = 0xFF
	}
	_, err := Decode(pixels, 100, 100, nil)
	if err == nil {
		t.Fatal("expected an error decoding a blank image")
	}
	if !errors.Is(err, ErrFinderNotFound) {
		t.Errorf("got %v, want ErrFinderNotFound", err)
	}
}

func TestEncodeRejectsOutOfRangeVersion(t *testing.T) {
	_, err := Encode("hi", ModeAlphanumeric, ECLevelL, 41)
	if err == nil {
		t.Fatal("expected error for version 41")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestEncodeRejectsCapacityExceeded(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'A'
	}
	_, err := Encode(string(long), ModeAlphanumeric, ECLevelH, 1)
	if err == nil {
		t.Fatal("expected ErrCapacityExceeded for oversized content at version 1")
	}
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("got %v, want ErrCapacityExceeded", err)
	}
}

func TestVersionForLength(t *testing.T) {
	v, err := VersionForLength(ECLevelL, ModeAlphanumeric, 20)
	if err != nil {
		t.Fatalf("VersionForLength failed: %v", err)
	}
	if v < 1 || v > 40 {
		t.Fatalf("version %d out of range", v)
	}
	grid, err := Encode("ABCDEFGHIJKLMNOPQRST", ModeAlphanumeric, ECLevelL, v)
	if err != nil {
		t.Fatalf("Encode at reported version %d failed: %v", v, err)
	}
	if grid.Version != v {
		t.Errorf("Encode chose version %d, VersionForLength said %d", grid.Version, v)
	}
}

func TestDataCapacityBitsIncreasesWithVersion(t *testing.T) {
	low := DataCapacityBits(1, ECLevelM)
	high := DataCapacityBits(10, ECLevelM)
	if high <= low {
		t.Errorf("DataCapacityBits(10) = %d, want more than DataCapacityBits(1) = %d", high, low)
	}
}

// recordingSink collects every event it receives, in order, for
// assertions without depending on a real logging backend.
type recordingSink struct {
	notes []Event
	warns []Event
}

func (s *recordingSink) Note(e Event) { s.notes = append(s.notes, e) }
func (s *recordingSink) Warn(e Event) { s.warns = append(s.warns, e) }

func TestDecodeEmitsFinderFoundAndMaskChosen(t *testing.T) {
	grid, err := Encode("SINK EVENTS", ModeAlphanumeric, ECLevelM, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	pixels, w, h := renderGrid(grid, 4, 4)

	sink := &recordingSink{}
	result, err := Decode(pixels, w, h, sink)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	var sawFinder, sawMask bool
	for _, e := range sink.notes {
		switch ev := e.(type) {
		case FinderFound:
			sawFinder = true
		case MaskChosen:
			sawMask = true
			if ev.Index != result.Mask {
				t.Errorf("MaskChosen.Index = %d, want %d", ev.Index, result.Mask)
			}
		}
	}
	if !sawFinder {
		t.Error("expected a FinderFound note")
	}
	if !sawMask {
		t.Error("expected a MaskChosen note")
	}
	if len(sink.warns) != 0 {
		t.Errorf("unexpected warnings on a clean synthetic read: %v", sink.warns)
	}
}

func TestNilSinkDiscardsEvents(t *testing.T) {
	grid, err := Encode("NO SINK", ModeAlphanumeric, ECLevelM, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	pixels, w, h := renderGrid(grid, 4, 4)
	if _, err := Decode(pixels, w, h, nil); err != nil {
		t.Fatalf("Decode with nil sink failed: %v", err)
	}
}

func TestErrorCorrectionLevelString(t *testing.T) {
	cases := map[ErrorCorrectionLevel]string{
		ECLevelL: "L", ECLevelM: "M", ECLevelQ: "Q", ECLevelH: "H",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", level, got, want)
		}
	}
}

func TestEncodeRejectsLowercaseAlphanumeric(t *testing.T) {
	_, err := Encode("hello", ModeAlphanumeric, ECLevelM, 0)
	if err == nil {
		t.Fatal("expected error encoding lowercase content as alphanumeric")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestRoundTripLowercaseAsByteMode(t *testing.T) {
	testRoundTrip(t, "hello", ModeByte, ECLevelM)
}

func TestRoundTripSurvivesBoundedModuleCorruption(t *testing.T) {
	content := "CORRUPT ME PLEASE"
	grid, err := Encode(content, ModeAlphanumeric, ECLevelH, 5)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	const moduleSize, margin = 4, 4
	pixels, w, h := renderGrid(grid, moduleSize, margin)

	// Flip a 3x3 block of modules well inside the data area, clear of the
	// finder patterns, timing pattern, format-info bands, and the
	// version-5 alignment pattern.
	corruptModules(pixels, w, moduleSize, margin, 10, 10, 3)

	result, err := Decode(pixels, w, h, nil)
	if err != nil {
		t.Fatalf("Decode failed after bounded module corruption: %v", err)
	}
	if result.Text != content {
		t.Errorf("round-trip mismatch after corruption: got %q, want %q", result.Text, content)
	}
	if result.ErrorsCorrected == 0 {
		t.Error("expected ErrorsCorrected > 0 after corrupting modules")
	}
}

func TestDecodeFailsUncorrectableAboveCorrectionCapacity(t *testing.T) {
	content := "TOO MUCH DAMAGE"
	grid, err := Encode(content, ModeAlphanumeric, ECLevelL, 5)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	const moduleSize, margin = 4, 4
	pixels, w, h := renderGrid(grid, moduleSize, margin)

	// Flip a 16x16 block, well past the bounded 3x3 corruption above and
	// far beyond what the weakest error correction level can recover,
	// in the same clear interior region.
	corruptModules(pixels, w, moduleSize, margin, 10, 10, 16)

	_, err = Decode(pixels, w, h, nil)
	if err == nil {
		t.Fatal("expected an error decoding a symbol damaged past correction capacity")
	}
	if !errors.Is(err, ErrUncorrectable) {
		t.Errorf("got %v, want ErrUncorrectable", err)
	}
}

func TestGridRowMatchesGet(t *testing.T) {
	grid, err := Encode("ROW CHECK", ModeAlphanumeric, ECLevelL, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for y := 0; y < grid.Dimension; y++ {
		row := grid.Row(y)
		for x := 0; x < grid.Dimension; x++ {
			if row[x] != grid.Get(x, y) {
				t.Fatalf("Row(%d)[%d] = %v, want %v", y, x, row[x], grid.Get(x, y))
			}
		}
	}
}
