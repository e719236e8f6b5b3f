package script

import (
	"encoding/json"
	"fmt"
	"sort"

	"script-sheets/internal/colour"
)

type NightMarker string

const (
	MarkerDusk       NightMarker = "dusk"
	MarkerDawn       NightMarker = "dawn"
	MarkerMinionInfo NightMarker = "minioninfo"
	MarkerDemonInfo  NightMarker = "demoninfo"
)

func (m NightMarker) Valid() bool {
	switch m {
	case MarkerDusk, MarkerDawn, MarkerMinionInfo, MarkerDemonInfo:
		return true
	}
	return false
}

type Night string

const (
	FirstNight Night = "first"
	OtherNight Night = "other"
)

// Positions of the info markers within the first-night numbering. Characters
// sharing a number with a marker wake after it.
const (
	MinionInfoOrder = 16
	DemonInfoOrder  = 20
)

type markerReminder struct {
	name  string
	first string
	other string
}

var markerReminders = map[NightMarker]markerReminder{
	MarkerDusk: {
		name:  "Dusk",
		first: "Start the Night Phase.",
		other: "Start the Night Phase.",
	},
	MarkerDawn: {
		name:  "Dawn",
		first: "Wait for a few seconds. End the Night Phase.",
		other: "Wait for a few seconds. End the Night Phase.",
	},
	MarkerDemonInfo: {
		name:  "Demon Info",
		first: "If there are 7 or more players, wake the Demon: Show the *THESE ARE YOUR MINIONS* token. Point to all Minions. Show the *THESE CHARACTERS ARE NOT IN PLAY* token. Show 3 not-in-play good character tokens.",
	},
	MarkerMinionInfo: {
		name:  "Minion Info",
		first: "If there are 7 or more players, wake all Minions: Show the *THIS IS THE DEMON* token. Point to the Demon. Show the *THESE ARE YOUR MINIONS* token. Point to the other Minions.",
	},
}

var markerImages = map[NightMarker]string{
	MarkerDusk:       "/images/dusk-icon.png",
	MarkerDawn:       "/images/dawn-icon.png",
	MarkerMinionInfo: "/images/minioninfo.png",
	MarkerDemonInfo:  "/images/demoninfo.png",
}

// NightOrderEntry is either a character or one of the fixed markers.
type NightOrderEntry struct {
	Character *Character
	Marker    NightMarker
}

func CharacterEntry(ch Character) NightOrderEntry {
	return NightOrderEntry{Character: &ch}
}

func MarkerEntry(marker NightMarker) NightOrderEntry {
	return NightOrderEntry{Marker: marker}
}

func (e NightOrderEntry) IsMarker() bool {
	return e.Character == nil
}

func (e NightOrderEntry) Name() string {
	if e.Character != nil {
		return e.Character.Name
	}
	return markerReminders[e.Marker].name
}

// Reminder returns the storyteller text for the given night, or "" when the
// entry has nothing to do that night.
func (e NightOrderEntry) Reminder(night Night) string {
	if e.Character != nil {
		if night == FirstNight {
			return e.Character.FirstNightReminder
		}
		return e.Character.OtherNightReminder
	}
	reminder := markerReminders[e.Marker]
	if night == FirstNight {
		return reminder.first
	}
	return reminder.other
}

func (e NightOrderEntry) Image() string {
	if e.Character != nil {
		return ImageURL(*e.Character)
	}
	return markerImages[e.Marker]
}

func (e NightOrderEntry) Color() string {
	if e.Character != nil {
		return colour.TeamColour(string(e.Character.Team))
	}
	return "#222"
}

func (e NightOrderEntry) MarshalJSON() ([]byte, error) {
	if e.Character != nil {
		return json.Marshal(e.Character)
	}
	return json.Marshal(string(e.Marker))
}

func (e *NightOrderEntry) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		if !NightMarker(marker).Valid() {
			return fmt.Errorf("unknown night marker %q", marker)
		}
		*e = MarkerEntry(NightMarker(marker))
		return nil
	}
	var ch Character
	if err := json.Unmarshal(data, &ch); err != nil {
		return err
	}
	*e = CharacterEntry(ch)
	return nil
}

type NightOrders struct {
	First []NightOrderEntry `json:"first"`
	Other []NightOrderEntry `json:"other"`
}

type orderedEntry struct {
	key   float64
	entry NightOrderEntry
}

// BuildNightOrders sorts the characters that wake on each night and frames
// them with the dusk/dawn markers. Minion and demon info only happen on the
// first night.
func BuildNightOrders(chars []Character) NightOrders {
	first := []orderedEntry{
		{key: MinionInfoOrder, entry: MarkerEntry(MarkerMinionInfo)},
		{key: DemonInfoOrder, entry: MarkerEntry(MarkerDemonInfo)},
	}
	var other []orderedEntry
	for _, ch := range chars {
		if ch.FirstNight > 0 {
			first = append(first, orderedEntry{key: ch.FirstNight, entry: CharacterEntry(ch)})
		}
		if ch.OtherNight > 0 {
			other = append(other, orderedEntry{key: ch.OtherNight, entry: CharacterEntry(ch)})
		}
	}
	return NightOrders{
		First: frame(first),
		Other: frame(other),
	}
}

func frame(entries []orderedEntry) []NightOrderEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	out := make([]NightOrderEntry, 0, len(entries)+2)
	out = append(out, MarkerEntry(MarkerDusk))
	for _, item := range entries {
		out = append(out, item.entry)
	}
	return append(out, MarkerEntry(MarkerDawn))
}
