package typography

import "strconv"

const (
	defaultSansFamily  = "-apple-system, system-ui, BlinkMacSystemFont, Segoe UI, sans-serif"
	defaultMonoFamily  = "ui-monospace, SFMono-Regular, SF Mono, Menlo, Consolas, monospace"
	defaultQuoteFamily = "Georgia, Times New Roman, serif"
)

var (
	headingSizes          = []float64{15, 17, 20, 24, 30, 38}
	headingLetterSpacings = []float64{0, 0, -0.25, -0.5, -0.75, -1}

	textSizes = []float64{11, 12, 13, 14, 16, 18, 20, 23, 30, 46}
)

// Defaults returns the built-in typeface definitions.
func Defaults() Set {
	return Set{
		Heading: defaultHeading(),
		Body:    defaultText(defaultSansFamily),
		Mono:    defaultText(defaultMonoFamily),
		Quote:   defaultQuote(),
	}
}

func defaultHeading() Typeface {
	tf := Typeface{
		Family:        defaultSansFamily,
		Size:          make(map[string]float64, len(headingSizes)),
		LineHeight:    make(map[string]float64, len(headingSizes)),
		LetterSpacing: make(map[string]float64, len(headingSizes)),
	}
	for i, size := range headingSizes {
		step := strconv.Itoa(i + 1)
		tf.Size[step] = size
		tf.LineHeight[step] = size * 1.25
		tf.LetterSpacing[step] = headingLetterSpacings[i]
	}
	tf.Weight = alternatingWeights(tf.Size, 700, 400)
	return tf
}

func defaultText(family string) Typeface {
	tf := Typeface{
		Family:        family,
		Size:          make(map[string]float64, len(textSizes)),
		LineHeight:    make(map[string]float64, len(textSizes)),
		LetterSpacing: make(map[string]float64, len(textSizes)),
	}
	for i, size := range textSizes {
		step := strconv.Itoa(i + 1)
		tf.Size[step] = size
		tf.LineHeight[step] = size + 8
		tf.LetterSpacing[step] = 0
	}
	tf.Weight = repeatedWeight(tf.Size, 400)
	return tf
}

func defaultQuote() Typeface {
	tf := defaultText(defaultQuoteFamily)
	tf.Style = repeatedValue(tf.Size, "italic")
	return tf
}
