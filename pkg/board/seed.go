package board

import "strconv"

func items(prefix int, names ...string) []Item {
	out := make([]Item, len(names))
	for i, n := range names {
		out[i] = Item{ID: strconv.Itoa(prefix + i), Name: n, Color: ColorGreen}
	}
	return out
}

// SeedColumns is the board every session starts with.
var SeedColumns = []Column{
	{
		Name: "Behavioral Tracking",
		Items: items(1,
			"Mouse Movement Patterns", "Scroll Behavior", "Time Spent per Post", "Interaction Frequency",
			"Content Hover Time", "Click Patterns", "Video Watch Duration", "Engagement Times",
		),
	},
	{
		Name: "Personal Information",
		Items: items(10,
			"Location History", "Device Information", "Contact Lists", "Search History",
			"Browser Type", "IP Address", "Connected Accounts", "Email Contacts",
		),
	},
	{
		Name: "Content Analysis",
		Items: items(19,
			"Message Sentiment", "Photo Content", "Shared Links", "Comment Topics",
			"Profile Keywords", "Post Frequency", "Media Preferences", "Language Usage",
		),
	},
}
