// Package mediaformat defines the key/value track format record exchanged
// with the demuxer and encoder layers, plus the key and codec constants
// those layers agree on. The strategy package reads input formats and emits
// freshly allocated output formats; nothing here touches the media itself.
package mediaformat
