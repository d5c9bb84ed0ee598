package domain

// NovelStatus is the publication state of a novel.
type NovelStatus string

const (
	NovelStatusOngoing   NovelStatus = "ongoing"
	NovelStatusCompleted NovelStatus = "completed"
)

func (s NovelStatus) String() string { return string(s) }

func (s NovelStatus) IsValid() bool {
	switch s {
	case NovelStatusOngoing, NovelStatusCompleted:
		return true
	}
	return false
}

// SearchMethod names the retrieval strategy that produced a result set.
type SearchMethod string

const (
	SearchMethodFullText SearchMethod = "fulltext"
	SearchMethodLike     SearchMethod = "like"
)

func (m SearchMethod) String() string { return string(m) }
