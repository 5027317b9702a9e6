package ui

const (
	// ScrollMargin is the number of rows kept visible around the cursor.
	ScrollMargin = 3

	// BorderHeight is the space taken by a panel border, per axis.
	BorderHeight = 2

	// HeaderHeight is the title line plus its separator.
	HeaderHeight = 2

	// PanelOverhead is what a bordered panel with a header loses to chrome.
	PanelOverhead = BorderHeight + HeaderHeight

	// SearchHeight is the height of the search panel including its border.
	SearchHeight = 14
)
