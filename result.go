package paperext

// Result holds the scholarly content extracted from one document. Fields are
// never null: absence is represented by the empty string.
type Result struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	MainText string `json:"main_text"`
}
