package mediaformat

import (
	"fmt"
	"maps"
)

// Format keys shared with the encoder surface. The string values are part of
// the wire contract and must not change.
const (
	KeyMime             = "mime"
	KeyWidth            = "width"
	KeyHeight           = "height"
	KeyFrameRate        = "frame-rate"
	KeyKeyFrameInterval = "i-frame-interval"
	KeyBitRate          = "bitrate"
	KeyColorFormat      = "color-format"
)

// Mime type identifiers for the codecs the pipeline negotiates.
const (
	MimeTypeVideoAVC  = "video/avc"
	MimeTypeVideoHEVC = "video/hevc"
	MimeTypeAudioAAC  = "audio/mp4a-latm"
)

// ColorFormatSurface is the encoder-capability tag written on every emitted
// video format. The value is consumed opaquely by the encoder setup.
const ColorFormatSurface = 0x7F000789

// Format is the key/value record describing one track. Input formats are
// owned by the caller and treated as read-only; output formats are freshly
// allocated.
type Format map[string]any

// NewVideoFormat returns a Format seeded with the three keys every video
// track carries.
func NewVideoFormat(mime string, width, height int) Format {
	return Format{
		KeyMime:   mime,
		KeyWidth:  width,
		KeyHeight: height,
	}
}

// Copy returns a shallow clone of the format.
func (f Format) Copy() Format {
	return maps.Clone(f)
}

// Has reports whether the key is present.
func (f Format) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// GetString returns the string stored under key.
func (f Format) GetString(key string) (string, bool) {
	s, ok := f[key].(string)
	return s, ok
}

// GetInt returns the integer stored under key. Float-stored whole numbers
// are accepted so formats that round-tripped through JSON still read back.
func (f Format) GetInt(key string) (int, bool) {
	switch v := f[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// GetFloat returns the numeric value stored under key as a float64,
// accepting integer-stored values.
func (f Format) GetFloat(key string) (float64, bool) {
	switch v := f[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// SetString stores a string value under key.
func (f Format) SetString(key, value string) {
	f[key] = value
}

// SetInt stores an integer value under key.
func (f Format) SetInt(key string, value int) {
	f[key] = value
}

// SetFloat stores a float value under key.
func (f Format) SetFloat(key string, value float64) {
	f[key] = value
}

// ValidateVideo checks that a format carries the keys the video decision
// procedure requires: a mime type and positive width and height. Frame rate
// and keyframe interval stay optional.
func ValidateVideo(f Format) error {
	if mime, ok := f.GetString(KeyMime); !ok || mime == "" {
		return fmt.Errorf("format: missing %q", KeyMime)
	}
	for _, key := range []string{KeyWidth, KeyHeight} {
		v, ok := f.GetInt(key)
		if !ok {
			return fmt.Errorf("format: missing %q", key)
		}
		if v <= 0 {
			return fmt.Errorf("format: %q must be positive, got %d", key, v)
		}
	}
	return nil
}
