package internal

// Column labels of the seminar notes sheet. Every label except ColNew
// must appear in a sheet's header row for that sheet to be selected.
const (
	ColTitle    = "차수"
	ColDatetime = "일시"
	ColNo       = "No"
	ColQuestion = "질문 요약"
	ColAskers   = "질문자 수"
	ColAnswer   = "답변 요약"
	ColTip      = "실천 팁"
	ColNew      = "NEW"
)

type RawRecord struct {
	Row    int
	Fields map[string]string
}

func (r RawRecord) Get(label string) string {
	return r.Fields[label]
}

type Item struct {
	No     int    `json:"no"`
	Q      string `json:"q"`
	A      string `json:"a"`
	Tip    string `json:"tip"`
	IsNew  bool   `json:"isNew"`
	Askers int    `json:"askers"`
}

type Section struct {
	Title    string `json:"title"`
	Datetime string `json:"datetime"`
	Items    []Item `json:"items"`
}

type Dataset struct {
	Promo    string    `json:"promo"`
	Sections []Section `json:"sections"`
}

type BuildRow struct {
	ID          int
	TraceID     string
	SourcePath  string
	SourceHash  string
	SheetName   string
	Sections    int
	Items       int
	Discarded   int
	DatasetJSON string
	CreatedAt   string
}

type FetchedWorkbook struct {
	FileID     string
	Name       string
	MimeType   string
	ModifiedAt string
	Blob       []byte
}
