package domain

// Label is the qualitative reputation derived from a numeric score.
type Label string

const (
	LabelExcellent Label = "excellent"
	LabelGood      Label = "good"
	LabelNeutral   Label = "neutral"
	LabelPoor      Label = "poor"
	LabelAwful     Label = "awful"
)

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	switch l {
	case LabelExcellent, LabelGood, LabelNeutral, LabelPoor, LabelAwful:
		return true
	default:
		return false
	}
}
