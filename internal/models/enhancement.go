package models

// ButtonClassification assigns primary/secondary roles to entries of the
// button candidate list that was sent to the classifier. Indices are
// positions in that list; nil means the classifier made no call for the slot.
type ButtonClassification struct {
	PrimaryIndex   *int    `json:"primaryIndex,omitempty"`
	SecondaryIndex *int    `json:"secondaryIndex,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
}

// ColorRoleAssignment reassigns palette roles. Empty fields leave the
// heuristic value untouched.
type ColorRoleAssignment struct {
	Primary     string  `json:"primary,omitempty"`
	Accent      string  `json:"accent,omitempty"`
	Background  string  `json:"background,omitempty"`
	TextPrimary string  `json:"textPrimary,omitempty"`
	Link        string  `json:"link,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
}

// LogoSelection picks one entry of the logo candidate list.
type LogoSelection struct {
	SelectedIndex *int    `json:"selectedIndex,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
}

// SemanticEnhancement is the classifier's role-assignment output. Every
// section is optional; absent or out-of-range values are ignored by the
// merger rather than treated as errors.
type SemanticEnhancement struct {
	ButtonClassification *ButtonClassification `json:"buttonClassification,omitempty"`
	ColorRoles           *ColorRoleAssignment  `json:"colorRoles,omitempty"`
	LogoSelection        *LogoSelection        `json:"logoSelection,omitempty"`
}
