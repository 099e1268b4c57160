package vocab

// Tag names one reference-data table of the vocabulary dataset. Only the
// antonym table has an editor so far; the others are listed for the tab bar
// and reject edits.
type Tag string

const (
	TagAntonyms          Tag = "Antonyms"
	TagExample           Tag = "Example"
	TagWords             Tag = "Words"
	TagPOS               Tag = "POS"
	TagDefinition        Tag = "Definition"
	TagTopics            Tag = "Topics"
	TagPronunciation     Tag = "Pronunciation"
	TagWordFamilies      Tag = "Word_Families"
	TagSynonymsGroups    Tag = "Synonyms_Groups"
	TagWordFamilyMapping Tag = "Word_Family_Mapping"
	TagWordSynonymMap    Tag = "Word_Synonym_Mapping"
	TagWordTopicMapping  Tag = "Word_Topic_Mapping"
)

var AllTags = []Tag{
	TagAntonyms,
	TagExample,
	TagWords,
	TagPOS,
	TagDefinition,
	TagTopics,
	TagPronunciation,
	TagWordFamilies,
	TagSynonymsGroups,
	TagWordFamilyMapping,
	TagWordSynonymMap,
	TagWordTopicMapping,
}

func (t Tag) IsValid() bool {
	for _, v := range AllTags {
		if t == v {
			return true
		}
	}
	return false
}

// AntonymPair links two word ids with opposite meanings.
type AntonymPair struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	Word1ID int  `gorm:"not null;index" json:"word1_id"`
	Word2ID int  `gorm:"not null;index" json:"word2_id"`
}

func (AntonymPair) TableName() string {
	return "antonym_pairs"
}
