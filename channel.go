package wlan

// Valid 2.4GHz channel numbers.
const (
	MinChannel = 1
	MaxChannel = 14
)

// channelFrequencies maps each 2.4GHz channel to its center frequency in MHz.
// Channel 14 sits 12MHz above channel 13, so no formula is used.
var channelFrequencies = [MaxChannel + 1]int{
	1:  2412,
	2:  2417,
	3:  2422,
	4:  2427,
	5:  2432,
	6:  2437,
	7:  2442,
	8:  2447,
	9:  2452,
	10: 2457,
	11: 2462,
	12: 2467,
	13: 2472,
	14: 2484,
}

// frequencyChannels is the reverse of channelFrequencies.
var frequencyChannels = func() map[int]int {
	m := make(map[int]int, MaxChannel)
	for ch := MinChannel; ch <= MaxChannel; ch++ {
		m[channelFrequencies[ch]] = ch
	}
	return m
}()

// ChannelForFrequency returns the 2.4GHz channel whose center frequency is
// freq MHz. It reports false for any other frequency.
func ChannelForFrequency(freq int) (int, bool) {
	ch, ok := frequencyChannels[freq]
	return ch, ok
}

// FrequencyForChannel returns the center frequency in MHz of a 2.4GHz
// channel. It reports false for channels outside 1-14.
func FrequencyForChannel(channel int) (int, bool) {
	if channel < MinChannel || channel > MaxChannel {
		return 0, false
	}
	return channelFrequencies[channel], true
}

// Channels returns the 2.4GHz channel numbers in ascending order.
func Channels() []int {
	chs := make([]int, 0, MaxChannel)
	for ch := MinChannel; ch <= MaxChannel; ch++ {
		chs = append(chs, ch)
	}
	return chs
}
