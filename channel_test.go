package wlan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChannelFrequencyRoundTrip(t *testing.T) {
	for _, ch := range Channels() {
		freq, ok := FrequencyForChannel(ch)
		if !ok {
			t.Fatalf("no frequency for channel %d", ch)
		}

		got, ok := ChannelForFrequency(freq)
		if !ok {
			t.Fatalf("no channel for frequency %d", freq)
		}
		if got != ch {
			t.Fatalf("frequency %d: want channel %d, got %d", freq, ch, got)
		}

		back, _ := FrequencyForChannel(got)
		if back != freq {
			t.Fatalf("channel %d: want frequency %d, got %d", got, freq, back)
		}
	}
}

func TestChannelFrequencySpacing(t *testing.T) {
	for ch := MinChannel + 1; ch <= 13; ch++ {
		prev, _ := FrequencyForChannel(ch - 1)
		cur, _ := FrequencyForChannel(ch)
		if cur-prev != 5 {
			t.Fatalf("channels %d and %d are %d MHz apart", ch-1, ch, cur-prev)
		}
	}

	f13, _ := FrequencyForChannel(13)
	f14, _ := FrequencyForChannel(14)
	if f14-f13 != 12 {
		t.Fatalf("channels 13 and 14 are %d MHz apart", f14-f13)
	}
}

func TestChannelForFrequencyUnknown(t *testing.T) {
	for _, freq := range []int{0, 2400, 2411, 2413, 2477, 2485, 5180} {
		if ch, ok := ChannelForFrequency(freq); ok {
			t.Errorf("frequency %d unexpectedly mapped to channel %d", freq, ch)
		}
	}
}

func TestFrequencyForChannelOutOfRange(t *testing.T) {
	for _, ch := range []int{-1, 0, 15, 36} {
		if freq, ok := FrequencyForChannel(ch); ok {
			t.Errorf("channel %d unexpectedly mapped to frequency %d", ch, freq)
		}
	}
}

func TestChannels(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	if diff := cmp.Diff(want, Channels()); diff != "" {
		t.Fatalf("unexpected channels (-want +got):\n%s", diff)
	}
}
