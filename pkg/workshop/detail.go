package workshop

// SectionKind selects how a detail section is rendered.
type SectionKind string

const (
	SectionText    SectionKind = "text"
	SectionGallery SectionKind = "gallery"
	SectionButtons SectionKind = "buttons"
)

type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

type Link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

type Section struct {
	Title   string      `json:"section"`
	Kind    SectionKind `json:"type"`
	Text    string      `json:"text"`
	Images  []Image     `json:"images,omitempty"`
	Buttons []Link      `json:"buttons,omitempty"`
}

type Detail struct {
	Slug    string    `json:"slug"`
	Number  string    `json:"number"`
	Title   string    `json:"title"`
	Content []Section `json:"content"`
}

var details = map[string]Detail{
	"data-collection": {
		Slug:   "data-collection",
		Number: "001",
		Title:  "Data Collection",
		Content: []Section{
			{
				Title: "Overview",
				Kind:  SectionText,
				Text: "This workshop explores the concept of data collection -- while the data used to train " +
					"machine learning algorithms can be incredibly personal, reflecting human choices and " +
					"behaviours, it is often framed using mechanical language and encourages feelings of " +
					"detachment. We are going to talk through key issues with our current model of data " +
					"collection, and work towards a more inclusive alternative.",
			},
			{
				Title: "Objectives",
				Kind:  SectionText,
				Text: "As with other workshops as part of this series, we are exploring concepts of " +
					"transparency and opacity and the process of obfuscation -- these activities encourage " +
					"participants to reflect on the transparency demands placed on us by big-tech and how " +
					"we might leverage our own data to shift this dynamic",
			},
			{
				Title: "Photos",
				Kind:  SectionGallery,
				Text:  "Documentation from previous workshops:",
				Images: []Image{
					{Src: "/workshop1/image1.png", Alt: "Workshop participants discussing data collection", Caption: "Group discussion on data privacy"},
					{Src: "/workshop1/image2.png", Alt: "Interactive exercise results", Caption: "Results from our data mapping exercise"},
					{Src: "/workshop1/image3.png", Alt: "Workshop materials", Caption: "Materials used in the workshop"},
				},
			},
			{
				Title: "Quick Links",
				Kind:  SectionButtons,
				Text:  "Access workshop resources:",
				Buttons: []Link{
					{Href: "/tools/data-tool", Label: "Simulation"},
					{Href: "/tools/consideration", Label: "Consideration"},
					{Href: "/tools/data-set-tool", Label: "Formulation"},
				},
			},
		},
	},
}

// Lookup returns the detail page for slug.
func Lookup(slug string) (Detail, error) {
	d, ok := details[slug]
	if !ok {
		return Detail{}, ErrNotFound
	}
	return d, nil
}

// Slugs lists the workshops that have a detail page.
func Slugs() []string {
	out := make([]string, 0, len(details))
	for slug := range details {
		out = append(out, slug)
	}
	return out
}
