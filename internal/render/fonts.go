package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Logger is the subset of the application logger the renderers use.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// FontSource is one font candidate. Data wins over Path when both are set.
type FontSource struct {
	Name string
	Path string
	Data []byte
}

func (s FontSource) label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

// DefaultFontCandidates lists the bold sans fonts tried in order. The embedded Go Bold
// font is last so a usable vector font exists even without system fonts.
func DefaultFontCandidates() []FontSource {
	return []FontSource{
		{Path: "/System/Library/Fonts/Supplemental/Arial Bold.ttf"},
		{Path: "/System/Library/Fonts/Supplemental/Helvetica.ttc"},
		{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
		{Name: "go-bold", Data: gobold.TTF},
	}
}

// FontOutcome tells whether a requested font size was honoured.
type FontOutcome int

const (
	// FontLoaded means a candidate produced a face at the requested size.
	FontLoaded FontOutcome = iota
	// FontFallback means every candidate failed and the fixed-size bitmap face is used.
	FontFallback
)

func (o FontOutcome) String() string {
	switch o {
	case FontLoaded:
		return "loaded"
	case FontFallback:
		return "fallback"
	default:
		return fmt.Sprintf("FontOutcome(%d)", int(o))
	}
}

// FontResult is the outcome of FontLoader.Load. Face is always usable.
type FontResult struct {
	Face    font.Face
	Outcome FontOutcome
	// Source names the candidate that produced Face; empty on fallback.
	Source string
	// Err is the last candidate error on fallback.
	Err error
}

// FallbackFace is the bitmap face used when no candidate loads. It ignores the size.
var FallbackFace font.Face = basicfont.Face7x13

type faceMaker func(size float64) (font.Face, error)

// FontLoader resolves faces from an ordered candidate list. Parsed fonts are kept for
// the loader's lifetime; faces are created per call and belong to the caller.
type FontLoader struct {
	Candidates []FontSource
	Logger     Logger

	parsed map[int]faceMaker
	failed map[int]error
	// warned is set after the first fallback is logged.
	warned bool
}

func NewFontLoader(candidates []FontSource) *FontLoader {
	return &FontLoader{Candidates: candidates}
}

// Load returns a face at size pixels from the first candidate that works.
func (l *FontLoader) Load(size float64) FontResult {
	if size <= 0 {
		return FontResult{Face: FallbackFace, Outcome: FontFallback, Err: fmt.Errorf("invalid font size %v", size)}
	}
	lastErr := errors.New("no font candidates")
	for i, candidate := range l.Candidates {
		makeFace, err := l.maker(i, candidate)
		if err != nil {
			lastErr = err
			continue
		}
		face, err := makeFace(size)
		if err != nil {
			lastErr = fmt.Errorf("font %s at %vpx: %w", candidate.label(), size, err)
			continue
		}
		return FontResult{Face: face, Outcome: FontLoaded, Source: candidate.label()}
	}
	if l.Logger != nil && !l.warned {
		l.warned = true
		l.Logger.Warnf("fonts", "no font candidate usable at %vpx, using basicfont: %v", size, lastErr)
	}
	return FontResult{Face: FallbackFace, Outcome: FontFallback, Err: lastErr}
}

func (l *FontLoader) maker(index int, candidate FontSource) (faceMaker, error) {
	if l.parsed == nil {
		l.parsed = make(map[int]faceMaker)
		l.failed = make(map[int]error)
	}
	if makeFace, ok := l.parsed[index]; ok {
		return makeFace, nil
	}
	if err, ok := l.failed[index]; ok {
		return nil, err
	}
	makeFace, err := parseFontSource(candidate)
	if err != nil {
		err = fmt.Errorf("font %s: %w", candidate.label(), err)
		l.failed[index] = err
		return nil, err
	}
	l.parsed[index] = makeFace
	if l.Logger != nil {
		l.Logger.Infof("fonts", "parsed font %s", candidate.label())
	}
	return makeFace, nil
}

func parseFontSource(candidate FontSource) (faceMaker, error) {
	data := candidate.Data
	if len(data) == 0 {
		if candidate.Path == "" {
			return nil, errors.New("empty font source")
		}
		raw, err := os.ReadFile(candidate.Path)
		if err != nil {
			return nil, err
		}
		data = raw
	}

	// Collections (.ttc) are only understood by the sfnt parser; take the first face.
	if bytes.HasPrefix(data, []byte("ttcf")) {
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		if collection.NumFonts() == 0 {
			return nil, errors.New("empty font collection")
		}
		fnt, err := collection.Font(0)
		if err != nil {
			return nil, err
		}
		return opentypeMaker(fnt), nil
	}

	if tt, err := truetype.Parse(data); err == nil {
		return func(size float64) (font.Face, error) {
			return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
		}, nil
	}
	// CFF-flavoured OpenType is rejected by freetype.
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentypeMaker(fnt), nil
}

func opentypeMaker(fnt *opentype.Font) faceMaker {
	return func(size float64) (font.Face, error) {
		return opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}
}
