package pdf

// PaperSize names a standard paper format.
type PaperSize string

const (
	PaperSizeA4     PaperSize = "A4"
	PaperSizeA5     PaperSize = "A5"
	PaperSizeLetter PaperSize = "Letter"
)

// paperDimensionsMM maps paper sizes to width × height in millimeters.
var paperDimensionsMM = map[PaperSize][2]float64{
	PaperSizeA4:     {210, 297},
	PaperSizeA5:     {148, 210},
	PaperSizeLetter: {216, 279},
}

// IsValid reports whether the paper size is a known format. The zero value is
// valid and resolves to A4.
func (p PaperSize) IsValid() bool {
	if p == "" {
		return true
	}
	_, ok := paperDimensionsMM[p]
	return ok
}

// Dimensions returns width and height in millimeters.
func (p PaperSize) Dimensions() (width, height float64) {
	if p == "" {
		p = PaperSizeA4
	}
	dims := paperDimensionsMM[p]
	return dims[0], dims[1]
}

// Orientation selects the page orientation.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Margins are page margins in millimeters.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns equal margins on all sides.
func UniformMargins(mm float64) Margins {
	return Margins{Top: mm, Right: mm, Bottom: mm, Left: mm}
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}
