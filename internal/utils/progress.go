package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescCopying = "Copying"
)

// NewProgressBar creates a consistently styled progress bar writing to w.
//
// Use a negative total for spinner mode. Pass io.Discard to render nothing.
//
// Example:
//
//	bar := utils.NewProgressBar(len(selection), utils.DescCopying, os.Stderr)
//	defer bar.Finish()
//
//	for _, sel := range selection {
//	    // Copy item
//	    bar.Add(1)
//	}
func NewProgressBar(total int, description string, w io.Writer) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
