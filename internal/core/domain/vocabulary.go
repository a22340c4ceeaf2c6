package domain

// VocabularyKind names one of the per-board open string sets used to populate
// dropdown options. Values are auto-registered on first use and removing a
// value never touches items that already carry it.
type VocabularyKind string

const (
	VocabCategory VocabularyKind = "category"
	VocabLabel    VocabularyKind = "label"
	VocabPaidTo   VocabularyKind = "paid_to"
)

// VocabularyKinds lists every supported kind, for validation.
var VocabularyKinds = []VocabularyKind{VocabCategory, VocabLabel, VocabPaidTo}

// IsValidVocabularyKind reports whether k names a supported vocabulary.
func IsValidVocabularyKind(k VocabularyKind) bool {
	for _, kind := range VocabularyKinds {
		if kind == k {
			return true
		}
	}
	return false
}
