package demo

import (
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// PageData carries everything the demo page renders.
type PageData struct {
	templates.Base

	MaxTextLength int
	InputText     string
	Result        *translate.Result

	ConfidenceLabel string
	SpeedLabel      string
	LengthLabel     string
	EngineLabel     string
	EngineNote      string
}

// confidenceLabel maps a confidence score to its quality band.
func confidenceLabel(confidence float64) string {
	switch {
	case confidence > 0.8:
		return "Excellent"
	case confidence > 0.6:
		return "Good"
	default:
		return "Fair"
	}
}

// speedLabel maps processing time in seconds to a speed band.
func speedLabel(seconds float64) string {
	switch {
	case seconds < 1:
		return "Lightning Fast"
	case seconds < 3:
		return "Standard"
	default:
		return "Processing"
	}
}

// lengthLabel maps word count to a text size band.
func lengthLabel(wordCount int) string {
	switch {
	case wordCount < 50:
		return "Short Text"
	case wordCount < 200:
		return "Medium Text"
	default:
		return "Long Text"
	}
}
