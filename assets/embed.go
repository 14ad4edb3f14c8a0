// Package assets embeds the sound effects and owns the shared audio context.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.wav
var assetsFS embed.FS

var audioContext = audio.NewContext(22050)

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	b, err := assetsFS.ReadFile(name)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(name), ".wav") {
		stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", name, err)
		}
		return audioContext.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return audioContext.NewPlayerFromBytes(b), nil
}
