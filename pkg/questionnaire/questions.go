package questionnaire

// Question is one step of the questionnaire.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Impact   string   `json:"impact"`
}

// Closing is shown under the summary.
const Closing = "Consider how your choices shape power dynamics, cultural representation, " +
	"and community autonomy in your data collection process. Remember that " +
	"these decisions have real impacts on communities and their stories."

// Questions is the fixed data-ethics questionnaire.
var Questions = []Question{
	{
		ID:       1,
		Question: "Who gets to be represented in your dataset?",
		Choices: []string{
			"Only those who speak dominant languages",
			"Those who have internet access",
			"Those with formal education",
			"Communities who self-identify and consent",
		},
		Impact: "This choice determines whose voices and experiences are considered 'valid' in your data. Consider how this shapes power dynamics in knowledge production.",
	},
	{
		ID:       2,
		Question: "How will you handle multilingual data collection?",
		Choices: []string{
			"Translate everything to English",
			"Preserve original languages with translations",
			"Only collect in major languages",
			"Use community translators and preserve context",
		},
		Impact: "Language choices can flatten or preserve cultural nuances. Translation isn't neutral - it involves cultural interpretation.",
	},
	{
		ID:       3,
		Question: "How will you approach cultural concepts that don't translate directly?",
		Choices: []string{
			"Find the closest Western equivalent",
			"Exclude them as 'edge cases'",
			"Preserve original terms with detailed context",
			"Let communities define their own categories",
		},
		Impact: "This decision impacts whether unique cultural concepts are preserved or assimilated into dominant frameworks.",
	},
	{
		ID:       4,
		Question: "How will you handle data collection about traditional knowledge?",
		Choices: []string{
			"Treat it like any other data point",
			"Get permission from community leaders",
			"Implement community-controlled protocols",
			"Exclude traditional knowledge entirely",
		},
		Impact: "Traditional knowledge often has sacred or protected status. How do we respect these boundaries in data collection?",
	},
	{
		ID:       5,
		Question: "Who will have access to interpret the collected data?",
		Choices: []string{
			"Academic researchers only",
			"Original communities first",
			"Open access to everyone",
			"Regulated access with community oversight",
		},
		Impact: "Data interpretation can reshape narratives about communities. Who gets to tell these stories matters.",
	},
	{
		ID:       6,
		Question: "How will you handle demographic categories?",
		Choices: []string{
			"Use standard government categories",
			"Let people self-identify freely",
			"Use community-defined categories",
			"Avoid demographic categorization",
		},
		Impact: "Categories can reinforce or challenge existing power structures. They shape how people are seen and counted.",
	},
	{
		ID:       7,
		Question: "How will you address historical biases in your data collection?",
		Choices: []string{
			"Focus only on current data",
			"Acknowledge biases in methodology",
			"Actively correct for historical exclusions",
			"Let communities document their histories",
		},
		Impact: "Historical biases shape current data. How we address them affects future representation.",
	},
	{
		ID:       8,
		Question: "How will you handle sensitive cultural information?",
		Choices: []string{
			"Collect everything available",
			"Use content warnings",
			"Follow cultural protocols",
			"Only collect what communities share willingly",
		},
		Impact: "Some information may be sacred or private. How do we respect these boundaries while collecting data?",
	},
	{
		ID:       9,
		Question: "Who profits from this data collection?",
		Choices: []string{
			"Research institution",
			"Commercial entities",
			"Contributing communities",
			"Public domain with restrictions",
		},
		Impact: "Data collection often creates value. Who benefits from this value has ethical implications.",
	},
	{
		ID:       10,
		Question: "How will you ensure long-term community benefit?",
		Choices: []string{
			"Share research papers",
			"Provide monetary compensation",
			"Develop community resources",
			"Transfer data ownership to communities",
		},
		Impact: "Data collection should benefit source communities, not just researchers or institutions.",
	},
}
