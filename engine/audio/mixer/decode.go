package mixer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/h2non/filetype"
	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/core"
)

const resampleQuality = 4

// decode sniffs the container of data, decodes it and returns the samples
// converted to format.
func decode(data []byte, format beep.Format) (*beep.Buffer, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return nil, fmt.Errorf("%w: unrecognized audio data", core.ErrUnsupportedFormat)
	}

	var (
		streamer beep.StreamSeekCloser
		srcFmt   beep.Format
	)
	rc := io.NopCloser(bytes.NewReader(data))
	switch kind.Extension {
	case "wav":
		streamer, srcFmt, err = wav.Decode(rc)
	case "mp3":
		streamer, srcFmt, err = mp3.Decode(rc)
	case "ogg":
		streamer, srcFmt, err = vorbis.Decode(rc)
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, kind.MIME.Value)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrUnsupportedFormat, kind.Extension, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if srcFmt.SampleRate != format.SampleRate {
		s = beep.Resample(resampleQuality, srcFmt.SampleRate, format.SampleRate, streamer)
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrUnsupportedFormat, kind.Extension, err)
	}
	return buffer, nil
}

func errInvalidSource(id audio.SoundID) error {
	return fmt.Errorf("%w: audio source %d", core.ErrInvalidHandle, id)
}
