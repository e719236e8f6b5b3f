package script

import (
	"encoding/json"
	"errors"
	"testing"
)

func testCatalog() *Catalog {
	return NewCatalog([]Character{
		{ID: "washerwoman", Name: "Washerwoman", Team: TeamTownsfolk, Ability: "You start knowing that 1 of 2 players is a particular Townsfolk.", WikiImage: "/icons/washerwoman.png", FirstNight: 32, FirstNightReminder: "Show the Townsfolk character token."},
		{ID: "fortune_teller", Name: "Fortune Teller", Team: TeamTownsfolk, Ability: "Each night, choose 2 players: you learn if either is a Demon. There is a good player that registers as a Demon to you.", FirstNight: 37, OtherNight: 50, FirstNightReminder: "The Fortune Teller points to two players.", OtherNightReminder: "The Fortune Teller points to two players."},
		{ID: "drunk", Name: "Drunk", Team: TeamOutsider, Ability: "You do not know you are the Drunk. You think you are a Townsfolk character, but you are not. [+1 Outsider]"},
		{ID: "spy", Name: "Spy", Team: TeamMinion, Ability: "Each night, you see the Grimoire.", FirstNight: 48, OtherNight: 68, FirstNightReminder: "Show the Grimoire.", OtherNightReminder: "Show the Grimoire."},
		{ID: "imp", Name: "Imp", Team: TeamDemon, Ability: "Each night*, choose a player: they die.", OtherNight: 24, OtherNightReminder: "The Imp points to a player. That player dies."},
		{ID: "spiritofivory", Name: "Spirit of Ivory", Team: TeamFabled, Ability: "There can't be more than 1 extra evil player."},
	}, []Jinx{
		{Characters: [2]string{"spy", "fortune_teller"}, Text: "The Spy registers as good to the Fortune Teller.", OldText: "Old spy text."},
		{Characters: [2]string{"spy", "magician"}, Text: "Never shown."},
	})
}

func TestParseScriptResolvesIdsAndMeta(t *testing.T) {
	data := []byte(`[
		{"id": "_meta", "name": "Trouble Lite", "author": "Ada", "logo": "https://example.com/logo.png"},
		"washerwoman",
		{"id": "Fortune-Teller"},
		"missing_character",
		{"id": "drunk"},
		"spy",
		"imp",
		"imp",
		{"id": "scout", "name": "Scout", "team": "townsfolk", "ability": "You know things.", "image": ["/a.png", "/b.png"]}
	]`)
	parsed, err := ParseScript(data, testCatalog())
	if err != nil {
		t.Fatalf("parse script: %v", err)
	}
	if parsed.Title() != "Trouble Lite" || parsed.Metadata.Author != "Ada" {
		t.Fatalf("unexpected metadata: %#v", parsed.Metadata)
	}
	ids := make([]string, 0, len(parsed.Characters))
	for _, ch := range parsed.Characters {
		ids = append(ids, ch.ID)
	}
	want := []string{"washerwoman", "fortuneteller", "drunk", "spy", "imp", "scout"}
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
	scout := parsed.Characters[5]
	if !scout.IsCustom || len(scout.Image) != 2 {
		t.Fatalf("expected custom scout with two images, got %#v", scout)
	}
}

func TestParseScriptErrors(t *testing.T) {
	if _, err := ParseScript([]byte("  "), nil); !errors.Is(err, ErrEmptyScript) {
		t.Fatalf("expected ErrEmptyScript, got %v", err)
	}
	if _, err := ParseScript([]byte(`[1, 2`), nil); err == nil {
		t.Fatal("expected malformed json error")
	}
}

func TestParseScriptObjectForm(t *testing.T) {
	data := []byte(`{"metadata": {"name": ""}, "characters": [{"id": "x", "name": "X", "team": "demon", "ability": "a", "image": "/x.png"}]}`)
	parsed, err := ParseScript(data, nil)
	if err != nil {
		t.Fatalf("parse script: %v", err)
	}
	if parsed.Title() != DefaultTitle {
		t.Fatalf("expected default title, got %q", parsed.Title())
	}
	if len(parsed.Characters) != 1 || parsed.Characters[0].Image[0] != "/x.png" {
		t.Fatalf("unexpected characters: %#v", parsed.Characters)
	}
}

func TestParseScriptSkipsUnknownTeam(t *testing.T) {
	parsed, err := ParseScript([]byte(`[{"id": "odd", "name": "Odd", "team": "spectator", "ability": "none"}]`), nil)
	if err != nil {
		t.Fatalf("parse script: %v", err)
	}
	if len(parsed.Characters) != 0 {
		t.Fatalf("expected no characters, got %#v", parsed.Characters)
	}
}

func TestGroupCharactersByTeamPreservesOrder(t *testing.T) {
	chars := []Character{
		{ID: "a", Team: TeamTownsfolk},
		{ID: "b", Team: TeamDemon},
		{ID: "c", Team: TeamTownsfolk},
		{ID: "d", Team: TeamFabled},
		{ID: "e", Team: TeamLoric},
	}
	grouped := GroupCharactersByTeam(chars)
	if len(grouped.Townsfolk) != 2 || grouped.Townsfolk[0].ID != "a" || grouped.Townsfolk[1].ID != "c" {
		t.Fatalf("unexpected townsfolk: %#v", grouped.Townsfolk)
	}
	if len(grouped.Demon) != 1 || len(grouped.Fabled) != 1 || len(grouped.Loric) != 1 {
		t.Fatalf("unexpected grouping: %#v", grouped)
	}
	if players := grouped.Players(); len(players) != 3 {
		t.Fatalf("expected 3 player characters, got %d", len(players))
	}
}

func TestImageURLFallback(t *testing.T) {
	cases := []struct {
		name string
		ch   Character
		want string
	}{
		{name: "wiki wins", ch: Character{WikiImage: "/wiki.png", Image: StringList{"/custom.png"}}, want: "/wiki.png"},
		{name: "first custom", ch: Character{Image: StringList{"/one.png", "/two.png"}}, want: "/one.png"},
		{name: "none", ch: Character{}, want: ""},
	}
	for _, tc := range cases {
		if got := ImageURL(tc.ch); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
	if Initial("Éclair") != "É" || Initial("") != "?" {
		t.Fatal("unexpected initials")
	}
}

func TestFabledAndLoric(t *testing.T) {
	items := FabledAndLoric([]Character{
		{Name: "Imp", Team: TeamDemon},
		{Name: "Djinn", Team: TeamFabled, Ability: "Use the Djinn's special rule."},
		{Name: "Big Wig", Team: TeamLoric, Ability: "Nominees speak."},
	})
	if len(items) != 2 || items[0].Name != "Djinn" || items[1].Note != "Nominees speak." {
		t.Fatalf("unexpected items: %#v", items)
	}
}

func TestFindJinxes(t *testing.T) {
	catalog := testCatalog()
	chars := []Character{
		{ID: "fortuneteller", Name: "Fortune Teller"},
		{ID: "spy", Name: "Spy", Jinxes: []CharacterJinx{{ID: "fortune_teller", Reason: "Duplicate of catalog jinx."}}},
		{ID: "scout", Name: "Scout", Jinxes: []CharacterJinx{{ID: "spy", Reason: "Scout jinx."}, {ID: "absent", Reason: "Skipped."}}},
	}
	jinxes := FindJinxes(chars, catalog, false)
	if len(jinxes) != 2 {
		t.Fatalf("expected 2 jinxes, got %#v", jinxes)
	}
	if jinxes[0].Text != "The Spy registers as good to the Fortune Teller." {
		t.Fatalf("unexpected first jinx %#v", jinxes[0])
	}
	if jinxes[1].Characters != [2]string{"scout", "spy"} {
		t.Fatalf("unexpected second jinx %#v", jinxes[1])
	}

	old := FindJinxes(chars, catalog, true)
	if old[0].Text != "Old spy text." {
		t.Fatalf("expected old jinx text, got %q", old[0].Text)
	}
}

func TestBuildNightOrders(t *testing.T) {
	chars := testCatalog().Characters()
	orders := BuildNightOrders(chars)

	first := names(orders.First)
	wantFirst := []string{"Dusk", "Minion Info", "Demon Info", "Washerwoman", "Fortune Teller", "Spy", "Dawn"}
	assertNames(t, first, wantFirst)

	other := names(orders.Other)
	wantOther := []string{"Dusk", "Imp", "Fortune Teller", "Spy", "Dawn"}
	assertNames(t, other, wantOther)

	if orders.First[1].Reminder(OtherNight) != "" {
		t.Fatal("expected minion info to have no other-night reminder")
	}
	if orders.First[0].Image() != "/images/dusk-icon.png" || orders.First[0].Color() != "#222" {
		t.Fatalf("unexpected dusk presentation")
	}
	if orders.First[3].Color() != "#00469e" {
		t.Fatalf("expected townsfolk colour, got %s", orders.First[3].Color())
	}
}

func TestNightOrderEntryJSON(t *testing.T) {
	var orders NightOrders
	data := []byte(`{"first": ["dusk", {"id": "imp", "name": "Imp", "team": "demon"}, "dawn"], "other": []}`)
	if err := json.Unmarshal(data, &orders); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(orders.First) != 3 || !orders.First[0].IsMarker() || orders.First[1].Name() != "Imp" {
		t.Fatalf("unexpected orders %#v", orders.First)
	}
	encoded, err := json.Marshal(orders.First[0])
	if err != nil || string(encoded) != `"dusk"` {
		t.Fatalf("expected marker to encode as string, got %s (%v)", encoded, err)
	}
	var entry NightOrderEntry
	if err := json.Unmarshal([]byte(`"midnight"`), &entry); err == nil {
		t.Fatal("expected unknown marker error")
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	opts.Appearance = "tiny"
	if err := opts.Validate(); err == nil {
		t.Fatal("expected unknown appearance error")
	}
	opts = DefaultOptions()
	opts.Color = StringList{"#12345"}
	if err := opts.Validate(); err == nil {
		t.Fatal("expected malformed colour error")
	}
	normalized := Options{}.Normalize()
	if normalized.IconScale != DefaultIconScale || normalized.Appearance != AppearanceNormal || normalized.PrimaryColor() == "" {
		t.Fatalf("unexpected normalized options %#v", normalized)
	}
}

func names(entries []NightOrderEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name())
	}
	return out
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
