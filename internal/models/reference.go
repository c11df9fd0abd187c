package models

// PartOfSpeech is read-only reference data with display names in English
// and Mon
type PartOfSpeech struct {
	PosID  int64  `json:"pos_id"`
	ENName string `json:"pos_ENname"`
	MMName string `json:"pos_Mmname"`
}

// Category is hierarchical read-only reference data used for filtering.
// Level 1 is a top-level category, level 2 a child.
type Category struct {
	CategoryID       int64  `json:"category_id"`
	Name             string `json:"name"`
	ParentCategoryID *int64 `json:"parent_category_id"`
	Level            int    `json:"level"`
}
