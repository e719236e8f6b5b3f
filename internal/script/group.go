package script

func GroupCharactersByTeam(chars []Character) GroupedCharacters {
	var grouped GroupedCharacters
	for _, ch := range chars {
		switch ch.Team {
		case TeamTownsfolk:
			grouped.Townsfolk = append(grouped.Townsfolk, ch)
		case TeamOutsider:
			grouped.Outsider = append(grouped.Outsider, ch)
		case TeamMinion:
			grouped.Minion = append(grouped.Minion, ch)
		case TeamDemon:
			grouped.Demon = append(grouped.Demon, ch)
		case TeamTraveller:
			grouped.Traveller = append(grouped.Traveller, ch)
		case TeamFabled:
			grouped.Fabled = append(grouped.Fabled, ch)
		case TeamLoric:
			grouped.Loric = append(grouped.Loric, ch)
		}
	}
	return grouped
}

// FabledAndLoric lists the reference items shown beside the jinxes.
func FabledAndLoric(chars []Character) []FabledOrLoric {
	var items []FabledOrLoric
	for _, ch := range chars {
		if ch.Team != TeamFabled && ch.Team != TeamLoric {
			continue
		}
		items = append(items, FabledOrLoric{
			Name:  ch.Name,
			Note:  ch.Ability,
			Image: ImageURL(ch),
		})
	}
	return items
}

// ImageURL prefers the wiki image, then the first custom image. An empty
// result means the caller should draw an initial-letter placeholder.
func ImageURL(ch Character) string {
	if ch.WikiImage != "" {
		return ch.WikiImage
	}
	if len(ch.Image) == 0 {
		return ""
	}
	return ch.Image[0]
}

// Initial is the placeholder letter for characters without an image.
func Initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}
